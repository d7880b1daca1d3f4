package generator

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/practicedb/internal/choice"
	"github.com/shopspring/decimal"
)

// employees creates managers first so every manager_id points at a lower
// employee id.
func (g *Generator) employees(departmentIDs []int64) ([]Employee, error) {
	counts, pools := g.cfg.Counts, g.cfg.Pools
	employees := make([]Employee, 0, counts.Managers+counts.Staff)

	for i := 0; i < counts.Managers; i++ {
		id := int64(i + 1)
		title := g.pick(pools.ManagerTitles)

		var manager sql.NullInt64
		if !isExecutive(title, pools.ExecutiveTitles) && id > 1 {
			manager = sql.NullInt64{Int64: int64(g.intBetween(1, int(id-1))), Valid: true}
		}

		e, err := g.employee(id, departmentIDs, title, manager,
			g.dateBetween(g.yearsAgo(5), g.yearsAgo(1)), pools.ManagerSalaryRange, pools.ManagerCommissionMax)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	for i := 0; i < counts.Staff; i++ {
		id := int64(counts.Managers + i + 1)
		title := g.pick(pools.JobTitles)

		var manager sql.NullInt64
		if counts.Managers > 0 {
			manager = sql.NullInt64{Int64: int64(g.intBetween(1, counts.Managers)), Valid: true}
		}

		e, err := g.employee(id, departmentIDs, title, manager,
			g.dateBetween(g.yearsAgo(3), g.today), pools.StaffSalaryRange, pools.StaffCommissionMax)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (g *Generator) employee(id int64, departmentIDs []int64, title string, manager sql.NullInt64,
	hired Date, salary [2]float64, maxCommission float64) (Employee, error) {
	first, last := g.provider.FirstName(), g.provider.LastName()
	department, err := g.pickID(departmentIDs)
	if err != nil {
		return Employee{}, fmt.Errorf("employee %d department: %w", id, err)
	}

	commission := decimal.Zero
	if strings.Contains(title, "Sales") {
		commission = g.money(0, maxCommission)
	}

	return Employee{
		ID:             id,
		FirstName:      first,
		LastName:       last,
		Email:          emailLocal(first, last, id) + "@company.com",
		HireDate:       hired,
		DepartmentID:   department,
		JobTitle:       title,
		ManagerID:      manager,
		Salary:         g.money(salary[0], salary[1]),
		CommissionRate: commission,
		IsActive:       true,
	}, nil
}

// salaries walks each employee forward from the hire date in one-year
// periods, starting below the current salary and compounding a raise.
func (g *Generator) salaries(employees []Employee) []Salary {
	pools := g.cfg.Pools
	salaries := make([]Salary, 0, len(employees)*g.cfg.Counts.SalaryYears)
	for _, e := range employees {
		amount := e.Salary.Mul(pools.SalaryStartRatio)
		effective := e.HireDate
		for year := 0; year < g.cfg.Counts.SalaryYears; year++ {
			end := effective.AddDays(365)
			salaries = append(salaries, Salary{
				ID:            int64(len(salaries) + 1),
				EmployeeID:    e.ID,
				Amount:        amount.Round(2),
				EffectiveDate: effective,
				EndDate:       end,
			})

			raise := choice.FloatBetween(g.rand, pools.SalaryRaiseMin, pools.SalaryRaiseMax)
			amount = amount.Mul(decimal.NewFromFloat(1 + raise))
			effective = end
		}
	}
	return salaries
}

func isExecutive(title string, executives []string) bool {
	for _, e := range executives {
		if title == e {
			return true
		}
	}
	return false
}
