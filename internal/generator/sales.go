package generator

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/choice"
	"github.com/shopspring/decimal"
)

func (g *Generator) salesReps(territoryIDs []int64) ([]SalesRep, error) {
	reps := make([]SalesRep, g.cfg.Counts.SalesReps)
	for i := range reps {
		territory, err := g.pickID(territoryIDs)
		if err != nil {
			return nil, fmt.Errorf("sales rep %d territory: %w", i+1, err)
		}
		reps[i] = SalesRep{
			ID:             int64(i + 1),
			Name:           g.provider.FullName(),
			TerritoryID:    territory,
			HireDate:       g.dateBetween(g.yearsAgo(2), g.today),
			CommissionRate: g.money(0.02, 0.08),
			Quota:          g.money(500000, 2000000),
		}
	}
	return reps, nil
}

// sales fills a daily window ending at the reference date. Unit price comes
// from the product price map and commission from the rep rate map.
func (g *Generator) sales(repIDs []int64, rates map[int64]decimal.Decimal, territoryIDs, products []int64,
	prices map[int64]decimal.Decimal) ([]Sale, error) {
	counts := g.cfg.Counts
	days := counts.SalesMonths * counts.SalesDaysPerMonth
	if days == 0 {
		return nil, nil
	}

	start := g.today.AddDays(-365)
	sales := make([]Sale, 0, days*(counts.SalesPerDayMin+counts.SalesPerDayMax)/2)
	for month := 0; month < counts.SalesMonths; month++ {
		monthStart := start.AddDays(30 * month)
		for d := 0; d < counts.SalesDaysPerMonth; d++ {
			saleDate := monthStart.AddDays(d)
			n := g.intBetween(counts.SalesPerDayMin, counts.SalesPerDayMax)
			for k := 0; k < n; k++ {
				sale, err := g.sale(int64(len(sales)+1), saleDate, repIDs, rates, territoryIDs, products, prices)
				if err != nil {
					return nil, err
				}
				sales = append(sales, sale)
			}
		}
	}
	return sales, nil
}

func (g *Generator) sale(id int64, saleDate Date, repIDs []int64, rates map[int64]decimal.Decimal,
	territoryIDs, products []int64, prices map[int64]decimal.Decimal) (Sale, error) {
	repID, err := g.pickID(repIDs)
	if err != nil {
		return Sale{}, fmt.Errorf("sale %d: %w", id, err)
	}
	rate, ok := rates[repID]
	if !ok {
		return Sale{}, missing("sales_reps", repID)
	}
	productID, err := g.pickID(products)
	if err != nil {
		return Sale{}, fmt.Errorf("sale %d: %w", id, err)
	}
	price, ok := prices[productID]
	if !ok {
		return Sale{}, missing("products", productID)
	}
	territoryID, err := g.pickID(territoryIDs)
	if err != nil {
		return Sale{}, fmt.Errorf("sale %d: %w", id, err)
	}

	qty := g.intBetween(1, 10)
	total := price.Mul(decimal.NewFromInt(int64(qty)))
	return Sale{
		ID:               id,
		RepID:            repID,
		TerritoryID:      territoryID,
		SaleDate:         saleDate,
		ProductID:        productID,
		Quantity:         qty,
		UnitPrice:        price,
		TotalAmount:      total,
		CommissionEarned: total.Mul(rate).Round(2),
	}, nil
}

// monthlyRevenue walks back one 30-day step per row, applying seasonality,
// compounding growth and noise. Profit is revenue minus expenses exactly.
func (g *Generator) monthlyRevenue() []MonthlyRevenue {
	pools := g.cfg.Pools
	rows := make([]MonthlyRevenue, g.cfg.Counts.RevenueMonths)
	for i := range rows {
		at := g.today.AddDays(-30 * i).Time()
		seasonality := 1 + pools.SeasonalAmplitude*float64(int(at.Month())-6)/6
		growth := 1 + float64(i)*pools.MonthlyGrowth
		noise := choice.FloatBetween(g.rand, 1-pools.RevenueNoise, 1+pools.RevenueNoise)

		revenue := pools.RevenueBase.Mul(decimal.NewFromFloat(seasonality * growth * noise)).Round(2)
		expenses := pools.ExpensesBase.Mul(decimal.NewFromFloat(growth * noise)).Round(2)

		rows[i] = MonthlyRevenue{
			ID:            int64(i + 1),
			Year:          at.Year(),
			Month:         int(at.Month()),
			Revenue:       revenue,
			Expenses:      expenses,
			Profit:        revenue.Sub(expenses),
			CustomerCount: g.intBetween(800, 1200),
			OrderCount:    g.intBetween(1500, 2500),
		}
	}
	return rows
}

func salesRepIDs(reps []SalesRep) []int64 {
	out := make([]int64, len(reps))
	for i, r := range reps {
		out[i] = r.ID
	}
	return out
}
