// Package docstore guarda los documentos generados (PDF de órdenes) como
// archivos con nombre dentro de un directorio local.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dcastano/inventario-taller/internal/application/orders"
	"github.com/dcastano/inventario-taller/internal/domain"
)

var _ orders.DocumentStore = (*LocalStore)(nil)

// LocalStore implementa orders.DocumentStore sobre el sistema de archivos.
// Cada documento se escribe una sola vez; reescribir un nombre existente es
// un error.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio si no existe y devuelve el almacén.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save escribe el documento. Devuelve ErrDocumentExists si el nombre ya
// fue usado y ErrInvalidInput si el nombre intenta salir del directorio.
func (s *LocalStore) Save(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return domain.ErrDocumentExists
		}
		return fmt.Errorf("create document %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	return nil
}

// Get devuelve los bytes del documento, ErrNotFound si no existe.
func (s *LocalStore) Get(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return data, nil
}

// resolve valida el nombre y lo convierte en ruta dentro del directorio.
func (s *LocalStore) resolve(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", domain.ErrInvalidInput
	}
	return filepath.Join(s.dir, name), nil
}
