// Package statement parsea extractos bancarios (.xlsx o .csv) a filas
// normalizadas. Columnas esperadas: fecha, monto, descripción, referencia.
package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smartkubik/backoffice/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	time.RFC3339,
}

// ParseFile despacha por extensión del nombre original.
func ParseFile(filename string, data []byte) ([]domain.StatementRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ParseXLSX(data)
	case ".csv":
		return ParseCSV(data)
	default:
		return nil, fmt.Errorf("formato no soportado: %s", filepath.Ext(filename))
	}
}

func ParseXLSX(data []byte) ([]domain.StatementRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja: %w", err)
	}

	var out []domain.StatementRow
	for _, row := range rows {
		r, ok := parseRow(row)
		if !ok {
			// encabezados y filas incompletas se ignoran
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func ParseCSV(data []byte) ([]domain.StatementRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}

	var out []domain.StatementRow
	for _, record := range records {
		r, ok := parseRow(record)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func parseRow(cells []string) (domain.StatementRow, bool) {
	if len(cells) < 2 {
		return domain.StatementRow{}, false
	}
	date, ok := parseDate(strings.TrimSpace(cells[0]))
	if !ok {
		return domain.StatementRow{}, false
	}
	amount, ok := parseAmount(strings.TrimSpace(cells[1]))
	if !ok {
		return domain.StatementRow{}, false
	}
	row := domain.StatementRow{TransactionDate: date, Amount: amount}
	if len(cells) > 2 {
		row.Description = strings.TrimSpace(cells[2])
	}
	if len(cells) > 3 {
		row.Reference = strings.TrimSpace(cells[3])
	}
	return row, true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// excelize puede devolver la fecha como serial numérico
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}

func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	// tolerar separador de miles: 1.234,56 o 1,234.56
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
