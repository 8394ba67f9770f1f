package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/adapters/report"
	"github.com/smartkubik/backoffice/internal/app"
	"github.com/smartkubik/backoffice/internal/config"
	"github.com/smartkubik/backoffice/internal/domain"
	"github.com/smartkubik/backoffice/internal/pricing"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	var (
		tenantFlag   = flag.String("tenant", "", "id del tenant")
		userFlag     = flag.String("user", "", "id del usuario que ejecuta")
		typeFlag     = flag.String("type", "", "operación: percentage_increase|margin_update|fixed_price|promotion|supplier_rate_adjustment|inflation_formula")
		pctFlag      = flag.Float64("percentage", 0, "porcentaje de aumento")
		marginFlag   = flag.Float64("margin", 0, "margen objetivo (0.30 = 30%)")
		priceFlag    = flag.Float64("price", 0, "precio fijo")
		discountFlag = flag.Float64("discount", 0, "descuento de promoción (%)")
		daysFlag     = flag.Int("days", 0, "duración de la promoción en días")
		oldRateFlag  = flag.Float64("old-rate", 0, "tasa anterior del proveedor")
		newRateFlag  = flag.Float64("new-rate", 0, "tasa nueva del proveedor")
		keepMargin   = flag.Bool("preserve-margin", false, "mantener el margen actual al ajustar tasa")
		parallelFlag = flag.Float64("parallel-rate", 0, "tasa paralela")
		bcvFlag      = flag.Float64("bcv-rate", 0, "tasa BCV")
		statusFlag   = flag.String("status", "active", "productos: active|inactive|all")
		categoryFlag = flag.String("category", "", "filtrar por categoría")
		brandFlag    = flag.String("brand", "", "filtrar por marca")
		idsFlag      = flag.String("ids", "", "ids de producto separados por coma")
		executeFlag  = flag.Bool("execute", false, "aplicar cambios (por defecto solo preview)")
	)
	flag.Parse()

	tenantID, err := uuid.Parse(*tenantFlag)
	if err != nil {
		zlog.Fatal().Err(err).Msg("tenant inválido")
	}

	op := pricing.Operation{
		Type:               pricing.OperationType(*typeFlag),
		Percentage:         *pctFlag,
		TargetMargin:       *marginFlag,
		FixedPrice:         *priceFlag,
		DiscountPercentage: *discountFlag,
		DurationDays:       *daysFlag,
		OldRate:            *oldRateFlag,
		NewRate:            *newRateFlag,
		PreserveMargin:     *keepMargin,
		ParallelRate:       *parallelFlag,
		BCVRate:            *bcvFlag,
	}

	criteria := domain.ProductCriteria{
		Status:   domain.ProductStatusFilter(*statusFlag),
		Category: *categoryFlag,
		Brand:    *brandFlag,
	}
	if *idsFlag != "" {
		for _, raw := range strings.Split(*idsFlag, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				zlog.Fatal().Str("id", raw).Msg("id de producto inválido")
			}
			criteria.IDs = append(criteria.IDs, id)
		}
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo conectar a la base")
	}

	application := app.NewApp(db)
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo migrar la base")
	}

	ctx := context.Background()

	if !*executeFlag {
		previews, err := application.Pricing.Preview(ctx, tenantID, criteria, op)
		if err != nil {
			zlog.Fatal().Err(err).Msg("preview falló")
		}
		for _, p := range previews {
			ev := zlog.Info().Str("sku", p.SKU).Float64("actual", p.CurrentPrice)
			if p.HasError {
				ev.Str("error", p.ErrorMessage).Msg(p.ProductName)
				continue
			}
			ev.Float64("nuevo", p.NewPrice).Float64("dif_pct", p.DiffPercentage).Msg(p.ProductName)
		}

		out := report.TimestampedFilename(config.ReportDir(), "pricing_preview")
		if err := report.ExportJSON(out, previews); err != nil {
			zlog.Fatal().Err(err).Msg("no se pudo exportar el preview")
		}
		zlog.Info().Int("filas", len(previews)).Str("archivo", out).Msg("preview exportado")
		return
	}

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		zlog.Fatal().Err(err).Msg("usuario inválido (requerido con -execute)")
	}
	updated, err := application.Pricing.Execute(ctx, tenantID, userID, criteria, op)
	if err != nil {
		zlog.Fatal().Err(err).Msg("actualización masiva falló")
	}
	zlog.Info().Int("actualizados", updated).Msg("precios actualizados")
}
