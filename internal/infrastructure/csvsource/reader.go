// Package csvsource abre exportaciones CSV de los POS: UTF-8 con o sin BOM, celdas como texto,
// filas de largo irregular y comillas mal cerradas toleradas.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewReader envuelve r quitando el BOM (UTF-8 o UTF-16) y configurando el lector CSV en modo tolerante.
func NewReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

// File CSV abierto desde disco; Close libera el archivo.
type File struct {
	*csv.Reader
	f *os.File
}

// Open abre la exportación en path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	return &File{Reader: NewReader(f), f: f}, nil
}

// Close cierra el archivo subyacente.
func (f *File) Close() error {
	return f.f.Close()
}
