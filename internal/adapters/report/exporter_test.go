package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartkubik/backoffice/internal/adapters/report"
)

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sub", "reporte.json")

	data := map[string]any{"diamante": 2, "bronce": 10}
	if err := report.ExportJSON(out, data); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("leer reporte: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("JSON inválido: %v", err)
	}
	if got["diamante"] != 2 || got["bronce"] != 10 {
		t.Fatalf("contenido: %+v", got)
	}
}

func TestTimestampedFilename(t *testing.T) {
	name := report.TimestampedFilename("reports", "tier_distribution")
	if !strings.HasPrefix(name, filepath.Join("reports", "tier_distribution_")) {
		t.Fatalf("prefijo: %s", name)
	}
	if !strings.HasSuffix(name, ".json") {
		t.Fatalf("sufijo: %s", name)
	}
}
