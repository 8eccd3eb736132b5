package pdf

import (
	"errors"
	"fmt"
	"os"
)

// ErrTemplateMissing reports that a configured template file does not exist.
// Both document kinds treat this as a hard failure; the hardcoded coordinate
// tables are meaningless without the matching template.
var ErrTemplateMissing = errors.New("pdf template not found")

// Store resolves the fixed template assets supplied by the operator.
type Store struct {
	certificatePath string
	attendancePath  string
}

// NewStore creates a template store over the configured asset paths.
func NewStore(certificatePath, attendancePath string) *Store {
	return &Store{
		certificatePath: certificatePath,
		attendancePath:  attendancePath,
	}
}

// Certificate returns the certificate template bytes.
func (s *Store) Certificate() ([]byte, error) {
	return readTemplate(s.certificatePath)
}

// Attendance returns the attendance sheet template bytes.
func (s *Store) Attendance() ([]byte, error) {
	return readTemplate(s.attendancePath)
}

// Paths lists the configured template files, for startup checks.
func (s *Store) Paths() []string {
	return []string{s.certificatePath, s.attendancePath}
}

func readTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return data, nil
}
