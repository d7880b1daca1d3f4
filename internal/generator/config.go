package generator

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/choice"
	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
	"github.com/shopspring/decimal"
)

type Counts struct {
	Customers         int `json:"customers"            mapstructure:"customers"`
	Orders            int `json:"orders"               mapstructure:"orders"`
	ItemsPerOrderMin  int `json:"items_per_order_min"  mapstructure:"items_per_order_min"`
	ItemsPerOrderMax  int `json:"items_per_order_max"  mapstructure:"items_per_order_max"`
	Managers          int `json:"managers"             mapstructure:"managers"`
	Staff             int `json:"staff"                mapstructure:"staff"`
	SalaryYears       int `json:"salary_years"         mapstructure:"salary_years"`
	SalesReps         int `json:"sales_reps"           mapstructure:"sales_reps"`
	SalesMonths       int `json:"sales_months"         mapstructure:"sales_months"`
	SalesDaysPerMonth int `json:"sales_days_per_month" mapstructure:"sales_days_per_month"`
	SalesPerDayMin    int `json:"sales_per_day_min"    mapstructure:"sales_per_day_min"`
	SalesPerDayMax    int `json:"sales_per_day_max"    mapstructure:"sales_per_day_max"`
	RevenueMonths     int `json:"revenue_months"       mapstructure:"revenue_months"`
	Students          int `json:"students"             mapstructure:"students"`
	EnrollmentsMin    int `json:"enrollments_min"      mapstructure:"enrollments_min"`
	EnrollmentsMax    int `json:"enrollments_max"      mapstructure:"enrollments_max"`
	Transactions      int `json:"transactions"         mapstructure:"transactions"`
	Movements         int `json:"movements"            mapstructure:"movements"`
}

// Pools holds the categorical value domains the generators sample from.
type Pools struct {
	Segments             []string
	Cities               []string
	States               []string
	PaymentMethods       []string
	Prices               []decimal.Decimal
	OrderStatuses        *choice.Weighted[string]
	ManagerTitles        []string
	ExecutiveTitles      []string
	JobTitles            []string
	Majors               []string
	EnrollmentStatuses   *choice.Weighted[string]
	TransactionDetails   []string
	MovementTypes        []string
	GraduationCredits    int
	RevenueBase          decimal.Decimal
	ExpensesBase         decimal.Decimal
	MonthlyGrowth        float64
	SeasonalAmplitude    float64
	RevenueNoise         float64
	SalaryStartRatio     decimal.Decimal
	SalaryRaiseMin       float64
	SalaryRaiseMax       float64
	ManagerSalaryRange   [2]float64
	StaffSalaryRange     [2]float64
	ManagerCommissionMax float64
	StaffCommissionMax   float64
}

// Config is everything a generation run depends on. Nothing is read from
// package state.
type Config struct {
	Seed    int64
	Now     time.Time
	Domains []schema.Domain
	Counts  Counts
	Pools   Pools

	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	MaxShippingCost       float64
	CostRatio             decimal.Decimal
	VIPRate               float64
	BillingSameRate       float64
	NullGradeRate         float64
}

func DefaultCounts() Counts {
	return Counts{
		Customers:         500,
		Orders:            2000,
		ItemsPerOrderMin:  1,
		ItemsPerOrderMax:  5,
		Managers:          20,
		Staff:             180,
		SalaryYears:       3,
		SalesReps:         50,
		SalesMonths:       12,
		SalesDaysPerMonth: 30,
		SalesPerDayMin:    50,
		SalesPerDayMax:    200,
		RevenueMonths:     24,
		Students:          300,
		EnrollmentsMin:    3,
		EnrollmentsMax:    6,
		Transactions:      1000,
		Movements:         500,
	}
}

func DefaultPools() Pools {
	return Pools{
		Segments: []string{"Premium", "Standard", "Budget", "Enterprise"},
		Cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
			"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
		},
		States:         []string{"NY", "CA", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "MI"},
		PaymentMethods: []string{"Credit Card", "Debit Card", "PayPal", "Apple Pay", "Google Pay", "Bank Transfer"},
		Prices: decimals(
			"29.99", "49.99", "79.99", "99.99", "149.99", "199.99",
			"299.99", "499.99", "699.99", "999.99", "1299.99", "1599.99",
		),
		OrderStatuses: choice.MustWeighted(
			[]string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled", "Returned"},
			[]float64{5, 10, 20, 60, 3, 2},
		),
		ExecutiveTitles: []string{"CEO", "CTO", "CFO"},
		ManagerTitles:   []string{"CEO", "CTO", "CFO", "VP Sales", "VP Marketing", "VP Engineering", "Director", "Manager"},
		JobTitles: []string{
			"VP Sales", "VP Marketing", "VP Engineering",
			"Sales Director", "Marketing Director", "Engineering Director",
			"Senior Sales Manager", "Sales Manager", "Account Executive",
			"Senior Marketing Manager", "Marketing Manager", "Content Manager",
			"Senior Software Engineer", "Software Engineer", "Junior Developer",
			"DevOps Engineer", "Data Scientist", "Product Manager",
			"HR Director", "HR Manager", "HR Specialist", "Recruiter",
			"Finance Director", "Finance Manager", "Financial Analyst",
			"Operations Director", "Operations Manager", "Operations Analyst",
			"Customer Service Manager", "Customer Service Rep", "Support Specialist",
		},
		Majors: []string{
			"Computer Science", "Business Administration", "Engineering", "Mathematics",
			"Physics", "Chemistry", "Biology", "Psychology", "English", "History",
		},
		EnrollmentStatuses: choice.MustWeighted(
			[]string{"Enrolled", "Completed", "Dropped", "In Progress"},
			[]float64{10, 70, 5, 15},
		),
		TransactionDetails: []string{
			"Sales Revenue", "Cost of Goods Sold", "Salary Payment", "Office Rent",
			"Equipment Purchase", "Loan Payment", "Interest Income", "Insurance Payment",
			"Marketing Expense", "Utilities Payment", "Customer Payment", "Vendor Payment",
		},
		MovementTypes:        []string{"IN", "OUT", "TRANSFER", "ADJUSTMENT"},
		GraduationCredits:    120,
		RevenueBase:          decimal.NewFromInt(1000000),
		ExpensesBase:         decimal.NewFromInt(600000),
		MonthlyGrowth:        0.02,
		SeasonalAmplitude:    0.3,
		RevenueNoise:         0.1,
		SalaryStartRatio:     decimal.RequireFromString("0.7"),
		SalaryRaiseMin:       0.05,
		SalaryRaiseMax:       0.15,
		ManagerSalaryRange:   [2]float64{80000, 200000},
		StaffSalaryRange:     [2]float64{35000, 120000},
		ManagerCommissionMax: 0.1,
		StaffCommissionMax:   0.05,
	}
}

func DefaultConfig() Config {
	return Config{
		Now:                   time.Now(),
		Domains:               append([]schema.Domain(nil), schema.AllDomains...),
		Counts:                DefaultCounts(),
		Pools:                 DefaultPools(),
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.NewFromInt(50),
		MaxShippingCost:       25,
		CostRatio:             decimal.RequireFromString("0.6"),
		VIPRate:               0.15,
		BillingSameRate:       0.7,
		NullGradeRate:         0.1,
	}
}

func (c Config) Validate() error {
	if err := schema.ValidateDomains(c.Domains); err != nil {
		return err
	}

	counts := map[string]int{
		"customers":      c.Counts.Customers,
		"orders":         c.Counts.Orders,
		"managers":       c.Counts.Managers,
		"staff":          c.Counts.Staff,
		"salary_years":   c.Counts.SalaryYears,
		"sales_reps":     c.Counts.SalesReps,
		"sales_months":   c.Counts.SalesMonths,
		"sales_days":     c.Counts.SalesDaysPerMonth,
		"revenue_months": c.Counts.RevenueMonths,
		"students":       c.Counts.Students,
		"transactions":   c.Counts.Transactions,
		"movements":      c.Counts.Movements,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("count %s must not be negative, got %d", name, n)
		}
	}

	ranges := []struct {
		name     string
		min, max int
	}{
		{"items per order", c.Counts.ItemsPerOrderMin, c.Counts.ItemsPerOrderMax},
		{"sales per day", c.Counts.SalesPerDayMin, c.Counts.SalesPerDayMax},
		{"enrollments per student", c.Counts.EnrollmentsMin, c.Counts.EnrollmentsMax},
	}
	for _, r := range ranges {
		if r.min < 0 || r.min > r.max {
			return fmt.Errorf("invalid %s range [%d, %d]", r.name, r.min, r.max)
		}
	}
	if c.Counts.ItemsPerOrderMin < 1 {
		return fmt.Errorf("every order needs at least one item")
	}

	if c.Counts.Orders > 0 && c.Counts.Customers == 0 {
		return fmt.Errorf("orders need at least one customer")
	}
	if schema.HasDomain(c.Domains, schema.Sales) && c.Counts.SalesReps == 0 &&
		c.Counts.SalesMonths*c.Counts.SalesDaysPerMonth*c.Counts.SalesPerDayMax > 0 {
		return fmt.Errorf("sales need at least one sales rep")
	}
	if c.Now.IsZero() {
		return fmt.Errorf("reference time must be set")
	}
	if len(c.Pools.Prices) == 0 {
		return fmt.Errorf("price ladder is empty")
	}
	if c.Pools.OrderStatuses == nil || c.Pools.EnrollmentStatuses == nil {
		return fmt.Errorf("status distributions are not configured")
	}
	return nil
}

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}
