package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store guarda los bytes de una foto y devuelve la referencia (filename)
// que se persiste en el registro. El record nunca guarda bytes.
type Store interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// Disk escribe en un directorio estático local.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("uploads dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := storedName(fh.Filename)
	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Discard genera la referencia sin escribir bytes; para tests.
type Discard struct{}

func (Discard) Save(fh *multipart.FileHeader) (string, error) {
	return storedName(fh.Filename), nil
}

// Nombre aleatorio + extensión original, para no pisar archivos entre subidas.
func storedName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}
