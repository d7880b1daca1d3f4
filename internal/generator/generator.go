package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/choice"
	"github.com/Lumos-Labs-HQ/practicedb/internal/realism"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/shopspring/decimal"
)

// ErrMissingParent reports a child row whose parent was never generated.
var ErrMissingParent = errors.New("missing parent record")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generator builds a complete Dataset in memory. It never touches a store.
type Generator struct {
	cfg      Config
	rand     *rand.Rand
	provider realism.Provider
	today    Date
}

func New(cfg Config, provider realism.Provider) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("realism provider is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:      cfg,
		rand:     rand.New(rand.NewSource(seed)),
		provider: provider,
		today:    NewDate(cfg.Now),
	}, nil
}

func (g *Generator) Config() Config {
	return g.cfg
}

// Build generates parents first and hands children only the parent values
// they derive from.
func (g *Generator) Build() (*Dataset, error) {
	ds := &Dataset{Domains: append([]schema.Domain(nil), g.cfg.Domains...)}

	var prices map[int64]decimal.Decimal
	if g.enabled(schema.Retail) {
		ds.Warehouses = warehouses()
		ds.Categories = categories()
		ds.Products = g.products()
		prices = priceIndex(ds.Products)
		ds.Customers = g.customers()
		orders, err := g.orders(ids(len(ds.Customers)), ids(len(ds.Warehouses)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate orders: %w", err)
		}
		ds.Orders = orders

		items, err := g.orderItems(ds.Orders, productIDs(ds.Products), prices)
		if err != nil {
			return nil, fmt.Errorf("failed to generate order items: %w", err)
		}
		ds.OrderItems = items
	}

	if g.enabled(schema.HR) {
		ds.Departments = departments()
		employees, err := g.employees(ids(len(ds.Departments)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate employees: %w", err)
		}
		ds.Employees = employees
		ds.Salaries = g.salaries(ds.Employees)
	}

	if g.enabled(schema.Sales) {
		ds.SalesTerritories = salesTerritories()
		reps, err := g.salesReps(ids(len(ds.SalesTerritories)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate sales reps: %w", err)
		}
		ds.SalesReps = reps

		sales, err := g.sales(salesRepIDs(ds.SalesReps), commissionIndex(ds.SalesReps),
			ids(len(ds.SalesTerritories)), productIDs(ds.Products), prices)
		if err != nil {
			return nil, fmt.Errorf("failed to generate sales: %w", err)
		}
		ds.Sales = sales
		ds.MonthlyRevenue = g.monthlyRevenue()
	}

	if g.enabled(schema.Education) {
		ds.Students = g.students()
		ds.Courses = courses()
		enrollments, err := g.enrollments(ds.Students, ids(len(ds.Courses)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate enrollments: %w", err)
		}
		ds.StudentEnrollments = enrollments
	}

	if g.enabled(schema.Finance) {
		ds.Accounts = accounts()
		txs, err := g.transactions(ids(len(ds.Accounts)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate transactions: %w", err)
		}
		ds.FinancialTransactions = txs
	}

	if g.enabled(schema.Inventory) {
		movements, err := g.movements(productIDs(ds.Products), ids(len(ds.Warehouses)))
		if err != nil {
			return nil, fmt.Errorf("failed to generate inventory movements: %w", err)
		}
		ds.InventoryMovements = movements
	}

	return ds, nil
}

func (g *Generator) enabled(d schema.Domain) bool {
	return schema.HasDomain(g.cfg.Domains, d)
}

func (g *Generator) intBetween(lo, hi int) int {
	return choice.IntBetween(g.rand, lo, hi)
}

func (g *Generator) money(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(choice.FloatBetween(g.rand, lo, hi)).Round(2)
}

func (g *Generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *Generator) pick(values []string) string {
	return choice.Uniform(g.rand, values)
}

func (g *Generator) pickID(pool []int64) (int64, error) {
	if len(pool) == 0 {
		return 0, ErrMissingParent
	}
	return pool[g.rand.Intn(len(pool))], nil
}

// daysAgo returns a day between lo and hi days before the reference date.
func (g *Generator) daysAgo(lo, hi int) Date {
	return g.today.AddDays(-g.intBetween(lo, hi))
}

func (g *Generator) dateBetween(start, end Date) Date {
	return NewDate(g.provider.Date(start.Time(), end.Time()))
}

func (g *Generator) yearsAgo(n int) Date {
	return NewDate(g.cfg.Now.AddDate(-n, 0, 0))
}

// emailLocal builds a mailbox name that is unique per row id.
func emailLocal(first, last string, id int64) string {
	f := nonAlnum.ReplaceAllString(strings.ToLower(first), "")
	l := nonAlnum.ReplaceAllString(strings.ToLower(last), "")
	return fmt.Sprintf("%s.%s.%d", f, l, id)
}

func ids(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out
}

func productIDs(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func priceIndex(products []Product) map[int64]decimal.Decimal {
	prices := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return prices
}

func commissionIndex(reps []SalesRep) map[int64]decimal.Decimal {
	rates := make(map[int64]decimal.Decimal, len(reps))
	for _, r := range reps {
		rates[r.ID] = r.CommissionRate
	}
	return rates
}

func missing(table string, id int64) error {
	return fmt.Errorf("%w: %s id %d", ErrMissingParent, table, id)
}
