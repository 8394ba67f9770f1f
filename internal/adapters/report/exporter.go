// Package report exporta resultados de los jobs como archivos JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func ExportJSON(filename string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("crear carpeta: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("escribir JSON: %w", err)
	}
	return nil
}

func TimestampedFilename(baseDir, name string) string {
	t := time.Now().Format("20060102_150405")
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.json", name, t))
}
