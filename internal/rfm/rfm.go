// Package rfm calcula scores Recency-Frequency-Monetary y asigna tiers de
// lealtad por percentiles. No hace I/O: recibe clientes y pedidos ya cargados
// y devuelve los resultados en memoria.
package rfm

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/smartkubik/backoffice/internal/domain"
)

// decayPerDay descuenta 1% del monto por cada día de antigüedad del pedido.
const decayPerDay = 0.99

const (
	weightRecency   = 0.5
	weightFrequency = 0.3
	weightMonetary  = 0.2
)

type Score struct {
	CustomerID   uuid.UUID
	RScore       float64
	FScore       float64
	MScore       float64
	LoyaltyScore float64
	OrderCount   int
	LastOrderAt  time.Time
}

// GroupOrders agrupa pedidos por cliente. Pedidos sin cliente se descartan.
func GroupOrders(orders []domain.Order) map[uuid.UUID][]domain.Order {
	byCustomer := make(map[uuid.UUID][]domain.Order)
	for _, o := range orders {
		if o.CustomerID == nil {
			continue
		}
		byCustomer[*o.CustomerID] = append(byCustomer[*o.CustomerID], o)
	}
	return byCustomer
}

// MonetaryWeight es el peso de un pedido de daysAgo días: 0.99^daysAgo.
func MonetaryWeight(daysAgo int) float64 {
	return math.Pow(decayPerDay, float64(daysAgo))
}

func daysSince(now, t time.Time) int {
	d := int(math.Floor(now.Sub(t).Hours() / 24))
	if d < 0 {
		// pedidos con fecha futura cuentan como de hoy
		return 0
	}
	return d
}

// ScoreCustomer calcula el score crudo de un cliente. Sin pedidos devuelve la
// tupla cero, que más adelante cae a bronce sin entrar al ranking.
func ScoreCustomer(customerID uuid.UUID, orders []domain.Order, now time.Time) Score {
	if len(orders) == 0 {
		return Score{CustomerID: customerID}
	}

	last := orders[0].CreatedAt
	for _, o := range orders[1:] {
		if o.CreatedAt.After(last) {
			last = o.CreatedAt
		}
	}
	rScore := 100.0 / float64(daysSince(now, last)+1)

	fScore := float64(len(orders))

	mScore := 0.0
	for _, o := range orders {
		mScore += o.TotalAmount * MonetaryWeight(daysSince(now, o.CreatedAt))
	}

	return Score{
		CustomerID:  customerID,
		RScore:      rScore,
		FScore:      fScore,
		MScore:      mScore,
		OrderCount:  len(orders),
		LastOrderAt: last,
	}
}

// ScoreAll puntúa cada cliente del tenant en el orden recibido.
func ScoreAll(customers []domain.Customer, byCustomer map[uuid.UUID][]domain.Order, now time.Time) []Score {
	scores := make([]Score, 0, len(customers))
	for _, c := range customers {
		scores = append(scores, ScoreCustomer(c.ID, byCustomer[c.ID], now))
	}
	return scores
}

// Normalize reescala R/F/M a 0-100 contra el máximo del tenant y fija el
// score compuesto. Un máximo en cero aporta cero, nunca divide.
func Normalize(scores []Score) {
	var maxR, maxF, maxM float64
	for _, s := range scores {
		maxR = math.Max(maxR, s.RScore)
		maxF = math.Max(maxF, s.FScore)
		maxM = math.Max(maxM, s.MScore)
	}
	for i := range scores {
		var normR, normF, normM float64
		if maxR > 0 {
			normR = scores[i].RScore / maxR * 100
		}
		if maxF > 0 {
			normF = scores[i].FScore / maxF * 100
		}
		if maxM > 0 {
			normM = scores[i].MScore / maxM * 100
		}
		scores[i].LoyaltyScore = weightRecency*normR + weightFrequency*normF + weightMonetary*normM
	}
}

// Rank devuelve los clientes con score positivo ordenados de mayor a menor.
// Empates se resuelven por id ascendente para que el resultado sea repetible.
func Rank(scores []Score) []Score {
	ranked := make([]Score, 0, len(scores))
	for _, s := range scores {
		if s.LoyaltyScore > 0 {
			ranked = append(ranked, s)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].LoyaltyScore != ranked[j].LoyaltyScore {
			return ranked[i].LoyaltyScore > ranked[j].LoyaltyScore
		}
		return ranked[i].CustomerID.String() < ranked[j].CustomerID.String()
	})
	return ranked
}

// Bands son las posiciones finales (1-indexadas) de cada tier en el ranking.
type Bands struct {
	DiamanteEnd int
	OroEnd      int
	PlataEnd    int
}

// BandBoundaries reparte n clientes rankeados en top 5% / 20% / 50%. Los
// pisos garantizan bandas no vacías incluso con poblaciones muy chicas.
func BandBoundaries(n int) Bands {
	diamanteEnd := max(1, n*5/100)
	oroEnd := max(diamanteEnd+1, n*20/100)
	plataEnd := max(oroEnd+1, n*50/100)
	return Bands{DiamanteEnd: diamanteEnd, OroEnd: oroEnd, PlataEnd: plataEnd}
}

func (b Bands) tierFor(rank int) domain.Tier {
	switch {
	case rank <= b.DiamanteEnd:
		return domain.TierDiamante
	case rank <= b.OroEnd:
		return domain.TierOro
	case rank <= b.PlataEnd:
		return domain.TierPlata
	default:
		return domain.TierBronce
	}
}

// AssignTiers asigna tier por posición en el ranking. Clientes fuera del
// ranking no aparecen en el mapa y quedan en bronce por defecto.
func AssignTiers(ranked []Score) map[uuid.UUID]domain.Tier {
	bands := BandBoundaries(len(ranked))
	tiers := make(map[uuid.UUID]domain.Tier, len(ranked))
	for i, s := range ranked {
		tiers[s.CustomerID] = bands.tierFor(i + 1)
	}
	return tiers
}
