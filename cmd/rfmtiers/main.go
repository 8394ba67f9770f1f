package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/adapters/report"
	"github.com/smartkubik/backoffice/internal/app"
	"github.com/smartkubik/backoffice/internal/config"
	"github.com/smartkubik/backoffice/internal/domain"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo conectar a la base")
	}

	application := app.NewApp(db)
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo migrar la base")
	}

	ctx := context.Background()
	results, err := application.Tiers.Run(ctx)
	if err != nil {
		zlog.Fatal().Err(err).Msg("recálculo de tiers falló")
	}

	total := map[domain.Tier]int{}
	for _, res := range results {
		for tier, n := range res.Counts {
			total[tier] += n
		}
	}
	zlog.Info().
		Int("tenants", len(results)).
		Int("diamante", total[domain.TierDiamante]).
		Int("oro", total[domain.TierOro]).
		Int("plata", total[domain.TierPlata]).
		Int("bronce", total[domain.TierBronce]).
		Msg("recálculo completado")

	out := report.TimestampedFilename(config.ReportDir(), "tier_distribution")
	if err := report.ExportJSON(out, results); err != nil {
		zlog.Error().Err(err).Msg("no se pudo exportar el reporte")
		return
	}
	zlog.Info().Str("archivo", out).Msg("reporte exportado")
}
