package repository

import "github.com/dcastano/inventario-taller/internal/domain/entity"

// WorkshopNoteRepository define el puerto para la nota única del taller.
type WorkshopNoteRepository interface {
	Get() (*entity.WorkshopNote, error)
	// Upsert reemplaza la nota; la última escritura gana.
	Upsert(note *entity.WorkshopNote) error
}
