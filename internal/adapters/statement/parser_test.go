package statement_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smartkubik/backoffice/internal/adapters/statement"
)

func TestParseCSV(t *testing.T) {
	data := []byte("fecha,monto,descripcion,referencia\n" +
		"2026-02-10,1500.00,transferencia recibida,REF-1\n" +
		"10/02/2026,-320.50,pago proveedor,REF-2\n" +
		"2026-02-11,99,,\n")

	rows, err := statement.ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("el encabezado se ignora y quedan 3 filas, got %d", len(rows))
	}

	if rows[0].Amount != 1500 || rows[0].Reference != "REF-1" || rows[0].Description != "transferencia recibida" {
		t.Fatalf("fila 0: %+v", rows[0])
	}
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if !rows[0].TransactionDate.Equal(want) {
		t.Fatalf("fecha fila 0: %v", rows[0].TransactionDate)
	}
	if !rows[1].TransactionDate.Equal(want) {
		t.Fatalf("formato dd/mm/yyyy: %v", rows[1].TransactionDate)
	}
	if rows[1].Amount != -320.50 {
		t.Fatalf("montos negativos: %f", rows[1].Amount)
	}
	if rows[2].Description != "" || rows[2].Reference != "" {
		t.Fatalf("columnas opcionales vacías: %+v", rows[2])
	}
}

func TestParseAmountSeparators(t *testing.T) {
	data := []byte("2026-02-10,\"1.234,56\",a,b\n" +
		"2026-02-11,\"1,234.56\",c,d\n" +
		"2026-02-12,\"320,50\",e,f\n")
	rows, err := statement.ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("filas: %d", len(rows))
	}
	if rows[0].Amount != 1234.56 || rows[1].Amount != 1234.56 {
		t.Fatalf("separador de miles: %f, %f", rows[0].Amount, rows[1].Amount)
	}
	if rows[2].Amount != 320.50 {
		t.Fatalf("coma decimal: %f", rows[2].Amount)
	}
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "fecha")
	_ = f.SetCellValue(sheet, "B1", "monto")
	_ = f.SetCellValue(sheet, "A2", "2026-02-10")
	_ = f.SetCellValue(sheet, "B2", "1500.00")
	_ = f.SetCellValue(sheet, "C2", "transferencia")
	_ = f.SetCellValue(sheet, "D2", "REF-1")
	_ = f.SetCellValue(sheet, "A3", "2026-02-11")
	_ = f.SetCellValue(sheet, "B3", "99")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("armar xlsx: %v", err)
	}

	rows, err := statement.ParseXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseXLSX: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("filas: %d", len(rows))
	}
	if rows[0].Amount != 1500 || rows[0].Reference != "REF-1" {
		t.Fatalf("fila 0: %+v", rows[0])
	}
	if rows[1].Amount != 99 || rows[1].Description != "" {
		t.Fatalf("fila 1: %+v", rows[1])
	}
}

func TestParseFileUnknownExtension(t *testing.T) {
	if _, err := statement.ParseFile("extracto.pdf", []byte("x")); err == nil {
		t.Fatal("extensión desconocida debe fallar")
	}
}

func TestParseFileDispatch(t *testing.T) {
	rows, err := statement.ParseFile("extracto.csv", []byte("2026-02-10,10,a,b\n"))
	if err != nil {
		t.Fatalf("ParseFile csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("filas: %d", len(rows))
	}
}
