// Comando sync: corre una pasada de conciliación del reporte de faltantes y
// termina. Pensado para cron o ejecución manual; la misma lógica está
// disponible como endpoint de administración.
package main

import (
	"context"
	"time"

	"github.com/dcastano/inventario-taller/internal/application/inventory"
	"github.com/dcastano/inventario-taller/internal/infrastructure/postgres"
	"github.com/dcastano/inventario-taller/pkg/config"
	"github.com/dcastano/inventario-taller/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:       cfg.App.Env,
		Level:     "info",
		Component: "sync",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reconcileUC := inventory.NewReconcileUseCase(postgres.NewTxRunner(pool))

	start := time.Now()
	n, err := reconcileUC.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("conciliación fallida")
	}

	log.Info().
		Int("sugerencias", n).
		Dur("duracion", time.Since(start)).
		Msg("conciliación completada")
}
