package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/staff/internal/model"
)

// Store reads an employee payload from a local JSON file, in the same raw shape
// the API serves. Useful offline and for demos; read-only, nothing is kept between runs.
type Store struct {
	path string
}

// New resolves path against the working directory.
func New(path string) (*Store, error) {
	p, err := dataPath(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: p}, nil
}

func dataPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

// Path is the resolved file location.
func (s *Store) Path() string { return s.path }

// Fetch reads and decodes the file. A missing file is an error, not an empty list.
func (s *Store) Fetch(ctx context.Context) ([]model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	list, err := model.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return list, nil
}

// Save writes display records in the same raw shape Fetch reads, so a
// snapshot can be fed back through New.
func Save(path string, list []model.Employee) error {
	p, err := dataPath(path)
	if err != nil {
		return err
	}
	raws := make([]model.RawEmployee, 0, len(list))
	for _, e := range list {
		raws = append(raws, model.ToRaw(e))
	}
	b, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
