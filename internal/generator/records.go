package generator

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	Capacity  int
	ManagerID int64
}

func (w Warehouse) Values() []interface{} {
	return []interface{}{w.ID, w.Name, w.Location, w.Capacity, w.ManagerID}
}

type Category struct {
	ID          int64
	Name        string
	ParentID    sql.NullInt64
	Description string
}

func (c Category) Values() []interface{} {
	return []interface{}{c.ID, c.Name, c.ParentID, c.Description}
}

type Product struct {
	ID          int64
	Name        string
	CategoryID  int64
	Price       decimal.Decimal
	Cost        decimal.Decimal
	WeightKg    decimal.Decimal
	Dimensions  string
	CreatedDate Date
	IsActive    bool
}

func (p Product) Values() []interface{} {
	return []interface{}{p.ID, p.Name, p.CategoryID, p.Price, p.Cost, p.WeightKg, p.Dimensions, p.CreatedDate, p.IsActive}
}

type Customer struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      Date
	RegistrationDate Date
	City             string
	State            string
	Country          string
	Segment          string
	IsVIP            bool
	TotalSpent       decimal.Decimal
}

func (c Customer) Values() []interface{} {
	return []interface{}{
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.DateOfBirth, c.RegistrationDate,
		c.City, c.State, c.Country, c.Segment, c.IsVIP, c.TotalSpent,
	}
}

type Order struct {
	ID              int64
	CustomerID      int64
	OrderDate       Date
	Status          string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	WarehouseID     int64
}

func (o Order) Values() []interface{} {
	return []interface{}{
		o.ID, o.CustomerID, o.OrderDate, o.Status, o.ShippingAddress, o.BillingAddress,
		o.PaymentMethod, o.Subtotal, o.TaxAmount, o.ShippingCost, o.TotalAmount, o.WarehouseID,
	}
}

type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

func (i OrderItem) Values() []interface{} {
	return []interface{}{i.ID, i.OrderID, i.ProductID, i.Quantity, i.UnitPrice, i.TotalPrice}
}

type Department struct {
	ID              int64
	Name            string
	ManagerID       sql.NullInt64
	Budget          decimal.Decimal
	Location        string
	EstablishedDate Date
}

func (d Department) Values() []interface{} {
	return []interface{}{d.ID, d.Name, d.ManagerID, d.Budget, d.Location, d.EstablishedDate}
}

type Employee struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	HireDate       Date
	DepartmentID   int64
	JobTitle       string
	ManagerID      sql.NullInt64
	Salary         decimal.Decimal
	CommissionRate decimal.Decimal
	IsActive       bool
}

func (e Employee) Values() []interface{} {
	return []interface{}{
		e.ID, e.FirstName, e.LastName, e.Email, e.HireDate, e.DepartmentID,
		e.JobTitle, e.ManagerID, e.Salary, e.CommissionRate, e.IsActive,
	}
}

type Salary struct {
	ID            int64
	EmployeeID    int64
	Amount        decimal.Decimal
	EffectiveDate Date
	EndDate       Date
}

func (s Salary) Values() []interface{} {
	return []interface{}{s.ID, s.EmployeeID, s.Amount, s.EffectiveDate, s.EndDate}
}

type SalesTerritory struct {
	ID            int64
	Name          string
	Region        string
	SalesRepID    int64
	TargetRevenue decimal.Decimal
}

func (t SalesTerritory) Values() []interface{} {
	return []interface{}{t.ID, t.Name, t.Region, t.SalesRepID, t.TargetRevenue}
}

type SalesRep struct {
	ID             int64
	Name           string
	TerritoryID    int64
	HireDate       Date
	CommissionRate decimal.Decimal
	Quota          decimal.Decimal
}

func (r SalesRep) Values() []interface{} {
	return []interface{}{r.ID, r.Name, r.TerritoryID, r.HireDate, r.CommissionRate, r.Quota}
}

type Sale struct {
	ID               int64
	RepID            int64
	TerritoryID      int64
	SaleDate         Date
	ProductID        int64
	Quantity         int
	UnitPrice        decimal.Decimal
	TotalAmount      decimal.Decimal
	CommissionEarned decimal.Decimal
}

func (s Sale) Values() []interface{} {
	return []interface{}{
		s.ID, s.RepID, s.TerritoryID, s.SaleDate, s.ProductID, s.Quantity,
		s.UnitPrice, s.TotalAmount, s.CommissionEarned,
	}
}

type MonthlyRevenue struct {
	ID            int64
	Year          int
	Month         int
	Revenue       decimal.Decimal
	Expenses      decimal.Decimal
	Profit        decimal.Decimal
	CustomerCount int
	OrderCount    int
}

func (m MonthlyRevenue) Values() []interface{} {
	return []interface{}{m.ID, m.Year, m.Month, m.Revenue, m.Expenses, m.Profit, m.CustomerCount, m.OrderCount}
}

type Student struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	DateOfBirth    Date
	EnrollmentDate Date
	Major          string
	GPA            decimal.Decimal
	CreditsEarned  int
	GraduationDate NullDate
	IsActive       bool
}

func (s Student) Values() []interface{} {
	return []interface{}{
		s.ID, s.FirstName, s.LastName, s.Email, s.DateOfBirth, s.EnrollmentDate,
		s.Major, s.GPA, s.CreditsEarned, s.GraduationDate, s.IsActive,
	}
}

type Course struct {
	ID                int64
	Name              string
	Department        string
	Credits           int
	Instructor        string
	Semester          string
	Year              int
	MaxEnrollment     int
	CurrentEnrollment int
}

func (c Course) Values() []interface{} {
	return []interface{}{
		c.ID, c.Name, c.Department, c.Credits, c.Instructor, c.Semester,
		c.Year, c.MaxEnrollment, c.CurrentEnrollment,
	}
}

type StudentEnrollment struct {
	ID             int64
	StudentID      int64
	CourseID       int64
	EnrollmentDate Date
	Grade          decimal.NullDecimal
	Status         string
}

func (e StudentEnrollment) Values() []interface{} {
	return []interface{}{e.ID, e.StudentID, e.CourseID, e.EnrollmentDate, e.Grade, e.Status}
}

type Account struct {
	ID          int64
	Name        string
	Type        string
	Balance     decimal.Decimal
	Currency    string
	IsActive    bool
	CreatedDate Date
}

func (a Account) Values() []interface{} {
	return []interface{}{a.ID, a.Name, a.Type, a.Balance, a.Currency, a.IsActive, a.CreatedDate}
}

type FinancialTransaction struct {
	ID              int64
	AccountID       int64
	TransactionDate Date
	Description     string
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	ReferenceNumber string
}

func (t FinancialTransaction) Values() []interface{} {
	return []interface{}{
		t.ID, t.AccountID, t.TransactionDate, t.Description,
		t.DebitAmount, t.CreditAmount, t.ReferenceNumber,
	}
}

type InventoryMovement struct {
	ID              int64
	ProductID       int64
	WarehouseID     int64
	MovementType    string
	Quantity        int
	MovementDate    Date
	ReferenceNumber string
}

func (m InventoryMovement) Values() []interface{} {
	return []interface{}{m.ID, m.ProductID, m.WarehouseID, m.MovementType, m.Quantity, m.MovementDate, m.ReferenceNumber}
}
