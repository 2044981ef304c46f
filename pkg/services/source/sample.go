package source

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

const sampleSeed = 42

var (
	products = []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	regions  = []string{"North", "South", "East", "West", "Central"}
	sellers  = []string{"Joao Silva", "Maria Santos", "Pedro Costa", "Ana Oliveira", "Carlos Lima"}
	lines    = []string{"Electronics", "Clothing", "Home", "Sports"}
)

// SampleLoader generates demo sales and financial datasets. The generator is
// seeded, so two loaders built with the same options produce the same tables.
type SampleLoader struct {
	days   int
	months int
}

func SampleFactory(opts Options) (Loader, error) {
	days := opts.Days
	if days <= 0 {
		days = 90
	}
	months := opts.Months
	if months <= 0 {
		months = 12
	}
	return &SampleLoader{days: days, months: months}, nil
}

func (l *SampleLoader) Load(_ context.Context) ([]domain.Dataset, error) {
	rng := rand.New(rand.NewSource(sampleSeed))
	return []domain.Dataset{
		{Name: "Sales", Table: salesTable(rng, l.days)},
		{Name: "Financials", Table: financialTable(rng, l.months)},
	}, nil
}

// salesTable simulates per-transaction sales over the trailing days, with a
// weekend slowdown factor.
func salesTable(rng *rand.Rand, days int) domain.Table {
	end := time.Now().Truncate(24 * time.Hour)
	table := domain.Table{}

	for d := days; d >= 0; d-- {
		day := end.AddDate(0, 0, -d)
		count := poisson(rng, 15)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count = int(float64(count) * 0.7)
		}

		for i := 0; i < count; i++ {
			quantity := float64(1 + rng.Intn(9))
			unitPrice := 50 + rng.Float64()*450
			discount := rng.Float64() * 0.15
			gross := quantity * unitPrice

			table.Rows = append(table.Rows, domain.Row{
				"date":           day,
				"product":        products[rng.Intn(len(products))],
				"region":         regions[rng.Intn(len(regions))],
				"seller":         sellers[rng.Intn(len(sellers))],
				"category":       lines[rng.Intn(len(lines))],
				"quantity":       quantity,
				"unit_price":     unitPrice,
				"discount":       discount,
				"gross_value":    gross,
				"discount_value": gross * discount,
				"net_value":      gross * (1 - discount),
			})
		}
	}
	return table
}

// financialTable simulates a monthly P&L over the trailing months.
func financialTable(rng *rand.Rand, months int) domain.Table {
	now := time.Now()
	table := domain.Table{}

	for m := months - 1; m >= 0; m-- {
		month := now.AddDate(0, -m, 0)
		revenue := 100000 + rng.Float64()*100000
		costs := 60000 + rng.Float64()*60000
		opex := 20000 + rng.Float64()*20000
		taxes := 8000 + rng.Float64()*7000
		grossProfit := revenue - costs
		netProfit := grossProfit - opex - taxes

		table.Rows = append(table.Rows, domain.Row{
			"month":        month.Format("2006-01"),
			"revenue":      revenue,
			"costs":        costs,
			"opex":         opex,
			"taxes":        taxes,
			"investments":  5000 + rng.Float64()*20000,
			"headcount":    float64(45 + rng.Intn(20)),
			"gross_profit": grossProfit,
			"net_profit":   netProfit,
			"net_margin":   netProfit / revenue * 100,
		})
	}
	return table
}

// poisson draws from Poisson(mean) via Knuth's method; mean is small enough
// that the product loop stays cheap.
func poisson(rng *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)
	product := rng.Float64()
	count := 0
	for product > limit {
		product *= rng.Float64()
		count++
	}
	return count
}
