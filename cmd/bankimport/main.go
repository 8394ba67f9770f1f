package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/adapters/statement"
	"github.com/smartkubik/backoffice/internal/app"
	"github.com/smartkubik/backoffice/internal/config"
	"github.com/smartkubik/backoffice/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	var (
		tenantFlag   = flag.String("tenant", "", "id del tenant")
		accountFlag  = flag.String("account", "", "id de la cuenta bancaria")
		fileFlag     = flag.String("file", "", "extracto bancario (.xlsx o .csv)")
		dateFlag     = flag.String("date", "", "fecha del extracto (YYYY-MM-DD)")
		startFlag    = flag.Float64("start", 0, "saldo inicial")
		endFlag      = flag.Float64("end", 0, "saldo final")
		currencyFlag = flag.String("currency", "VES", "moneda del extracto")
	)
	flag.Parse()

	tenantID, err := uuid.Parse(*tenantFlag)
	if err != nil {
		zlog.Fatal().Err(err).Msg("tenant inválido")
	}
	accountID, err := uuid.Parse(*accountFlag)
	if err != nil {
		zlog.Fatal().Err(err).Msg("cuenta inválida")
	}
	if *fileFlag == "" {
		zlog.Fatal().Msg("falta -file")
	}

	statementDate := time.Now().UTC()
	if *dateFlag != "" {
		statementDate, err = time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			zlog.Fatal().Err(err).Msg("fecha inválida")
		}
	}

	data, err := os.ReadFile(*fileFlag)
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo leer el archivo")
	}
	rows, err := statement.ParseFile(*fileFlag, data)
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo parsear el extracto")
	}
	zlog.Info().Int("filas", len(rows)).Msg("extracto parseado")

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo conectar a la base")
	}

	application := app.NewApp(db)
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo migrar la base")
	}

	imp, err := application.Reconcile.ImportStatement(context.Background(), usecase.ImportInput{
		TenantID:         tenantID,
		BankAccountID:    accountID,
		OriginalFilename: filepath.Base(*fileFlag),
		StatementDate:    statementDate,
		StartingBalance:  *startFlag,
		EndingBalance:    *endFlag,
		Currency:         *currencyFlag,
	}, rows)
	if err != nil {
		zlog.Fatal().Err(err).Msg("importación falló")
	}

	zlog.Info().
		Str("import", imp.ID.String()).
		Int("total", imp.TotalRows).
		Int("conciliadas", imp.MatchedRows).
		Int("pendientes", imp.UnmatchedRows).
		Msg("extracto importado")
}
