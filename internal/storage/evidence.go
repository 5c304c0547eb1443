package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EvidenceStore сохраняет загруженные снимки на локальный диск
type EvidenceStore struct {
	dir string
}

// NewEvidenceStore создает хранилище снимков, при необходимости создавая каталог
func NewEvidenceStore(dir string) (*EvidenceStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &EvidenceStore{dir: dir}, nil
}

// Save записывает снимок в файл и возвращает его путь.
// Суффикс uuid исключает коллизии имен при загрузках в одну и ту же секунду.
func (s *EvidenceStore) Save(image io.Reader, locationID string) (string, error) {
	filename := fmt.Sprintf("%s_%s_%s.jpg",
		SanitizeName(locationID),
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create evidence file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, image); err != nil {
		return "", fmt.Errorf("failed to write evidence file: %w", err)
	}
	return path, nil
}

// SanitizeName приводит идентификатор локации к безопасному имени файла:
// остаются только буквы, цифры, точка, дефис и подчеркивание
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	sanitized := b.String()
	if sanitized == "" {
		sanitized = "unnamed"
	}
	return sanitized
}
