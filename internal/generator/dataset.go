package generator

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/practicedb/internal/schema"
)

// Record is a generated row. Values follow the catalog column order.
type Record interface {
	Values() []interface{}
}

type Dataset struct {
	Domains []schema.Domain

	Warehouses            []Warehouse
	Categories            []Category
	Products              []Product
	Customers             []Customer
	Orders                []Order
	OrderItems            []OrderItem
	Departments           []Department
	Employees             []Employee
	Salaries              []Salary
	SalesTerritories      []SalesTerritory
	SalesReps             []SalesRep
	Sales                 []Sale
	MonthlyRevenue        []MonthlyRevenue
	Students              []Student
	Courses               []Course
	StudentEnrollments    []StudentEnrollment
	Accounts              []Account
	FinancialTransactions []FinancialTransaction
	InventoryMovements    []InventoryMovement
}

// Tables returns the catalog tables this dataset populates.
func (d *Dataset) Tables() []schema.Table {
	return schema.TablesFor(d.Domains)
}

// Rows returns the rows generated for a table as value tuples.
func (d *Dataset) Rows(table string) ([][]interface{}, error) {
	switch table {
	case schema.Warehouses:
		return rows(d.Warehouses), nil
	case schema.Categories:
		return rows(d.Categories), nil
	case schema.Products:
		return rows(d.Products), nil
	case schema.Customers:
		return rows(d.Customers), nil
	case schema.Orders:
		return rows(d.Orders), nil
	case schema.OrderItems:
		return rows(d.OrderItems), nil
	case schema.Departments:
		return rows(d.Departments), nil
	case schema.Employees:
		return rows(d.Employees), nil
	case schema.Salaries:
		return rows(d.Salaries), nil
	case schema.SalesTerritories:
		return rows(d.SalesTerritories), nil
	case schema.SalesReps:
		return rows(d.SalesReps), nil
	case schema.SalesFacts:
		return rows(d.Sales), nil
	case schema.MonthlyRevenue:
		return rows(d.MonthlyRevenue), nil
	case schema.Students:
		return rows(d.Students), nil
	case schema.Courses:
		return rows(d.Courses), nil
	case schema.StudentEnrollments:
		return rows(d.StudentEnrollments), nil
	case schema.Accounts:
		return rows(d.Accounts), nil
	case schema.FinancialTransactions:
		return rows(d.FinancialTransactions), nil
	case schema.InventoryMovements:
		return rows(d.InventoryMovements), nil
	default:
		return nil, fmt.Errorf("unknown table %s", table)
	}
}

// Counts returns the number of generated rows per populated table.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int)
	for _, t := range d.Tables() {
		r, _ := d.Rows(t.Name)
		counts[t.Name] = len(r)
	}
	return counts
}

func rows[T Record](records []T) [][]interface{} {
	out := make([][]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Values()
	}
	return out
}

// Range is an inclusive row-count bound. Exact targets have Min == Max.
type Range struct {
	Min int
	Max int
}

func exactly(n int) Range { return Range{Min: n, Max: n} }

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// ExpectedCounts returns the row count each enabled table must end up with.
// Enrollments depend on how many students are still active, so their range
// assumes every student might be; EnrollmentRange narrows it once that is known.
func ExpectedCounts(cfg Config) map[string]Range {
	c := cfg.Counts
	items := Range{Min: c.Orders * c.ItemsPerOrderMin, Max: c.Orders * c.ItemsPerOrderMax}
	days := c.SalesMonths * c.SalesDaysPerMonth
	sales := Range{Min: days * c.SalesPerDayMin, Max: days * c.SalesPerDayMax}
	enrollments := Range{Min: 0, Max: c.Students * c.EnrollmentsMax}

	all := map[string]Range{
		schema.Warehouses:            exactly(len(warehouses())),
		schema.Categories:            exactly(len(categories())),
		schema.Products:              exactly(ProductCount()),
		schema.Customers:             exactly(c.Customers),
		schema.Orders:                exactly(c.Orders),
		schema.OrderItems:            items,
		schema.Departments:           exactly(len(departments())),
		schema.Employees:             exactly(c.Managers + c.Staff),
		schema.Salaries:              exactly((c.Managers + c.Staff) * c.SalaryYears),
		schema.SalesTerritories:      exactly(len(salesTerritories())),
		schema.SalesReps:             exactly(c.SalesReps),
		schema.SalesFacts:            sales,
		schema.MonthlyRevenue:        exactly(c.RevenueMonths),
		schema.Students:              exactly(c.Students),
		schema.Courses:               exactly(len(courses())),
		schema.StudentEnrollments:    enrollments,
		schema.Accounts:              exactly(len(accounts())),
		schema.FinancialTransactions: exactly(c.Transactions),
		schema.InventoryMovements:    exactly(c.Movements),
	}

	out := make(map[string]Range)
	for _, t := range schema.TablesFor(cfg.Domains) {
		out[t.Name] = all[t.Name]
	}
	return out
}

// EnrollmentRange is the enrollment row count for a given number of active
// students.
func EnrollmentRange(cfg Config, activeStudents int) Range {
	return Range{
		Min: activeStudents * cfg.Counts.EnrollmentsMin,
		Max: activeStudents * cfg.Counts.EnrollmentsMax,
	}
}
