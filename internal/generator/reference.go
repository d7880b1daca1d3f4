package generator

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

func day(year int, month time.Month, d int) Date {
	return NewDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

func parent(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: true}
}

func warehouses() []Warehouse {
	return []Warehouse{
		{1, "Central Warehouse", "New York", 10000, 101},
		{2, "West Coast Distribution", "Los Angeles", 8000, 102},
		{3, "South Regional Center", "Atlanta", 6000, 103},
		{4, "North Distribution Hub", "Chicago", 7500, 104},
		{5, "East Coast Terminal", "Boston", 5500, 105},
	}
}

// categories is a two-level tree. Children always carry a higher id than
// their parent.
func categories() []Category {
	return []Category{
		{1, "Electronics", sql.NullInt64{}, "Electronic devices and accessories"},
		{2, "Smartphones", parent(1), "Mobile phones and accessories"},
		{3, "Laptops", parent(1), "Portable computers"},
		{4, "Clothing", sql.NullInt64{}, "Apparel and fashion"},
		{5, "Men Clothing", parent(4), "Men's apparel"},
		{6, "Women Clothing", parent(4), "Women's apparel"},
		{7, "Home & Garden", sql.NullInt64{}, "Home improvement and garden supplies"},
		{8, "Books", sql.NullInt64{}, "Books and educational materials"},
		{9, "Sports", sql.NullInt64{}, "Sports and outdoor equipment"},
	}
}

type catalogEntry struct {
	categoryID int64
	names      []string
}

var productCatalog = []catalogEntry{
	{2, []string{
		"iPhone 15 Pro", "Samsung Galaxy S24", "Google Pixel 8", "OnePlus 12",
		"iPhone 14", "Samsung Galaxy S23", "Google Pixel 7", "Xiaomi 13",
	}},
	{3, []string{
		`MacBook Pro 16"`, "Dell XPS 15", "HP Spectre x360", "Lenovo ThinkPad X1",
		"MacBook Air M2", "Dell Inspiron 15", "HP Pavilion", "ASUS ROG Strix",
	}},
	{5, []string{
		"Nike Air Max 270", "Adidas Ultraboost", "Levi's 501 Jeans", "Ralph Lauren Polo",
		"Under Armour Hoodie", "Champion T-Shirt", "Vans Classic Sneakers", "Timberland Boots",
	}},
	{6, []string{
		"Zara Blazer", "H&M Dress", "Forever 21 Jeans", "Gap Sweater",
		"Nike Sports Bra", "Lululemon Leggings", "Kate Spade Handbag", "Coach Purse",
	}},
	{7, []string{
		"Dyson V15 Vacuum", "KitchenAid Mixer", "Weber Grill", "IKEA Bookshelf",
		"Philips Hue Lights", "Nest Thermostat", "Roomba i7", "Instant Pot",
	}},
	{8, []string{
		"Python Programming", "Data Science Handbook", "Machine Learning Guide",
		"Business Strategy", "Personal Finance", "History of Art", "Cooking Masterclass",
	}},
	{9, []string{
		"Yoga Mat Premium", "Resistance Bands Set", "Adjustable Dumbbells",
		"Basketball Official", "Tennis Racket Pro", "Cycling Helmet", "Running Shoes",
	}},
}

// ProductCount is the number of named products in the fixed catalog.
func ProductCount() int {
	n := 0
	for _, entry := range productCatalog {
		n += len(entry.names)
	}
	return n
}

func departments() []Department {
	return []Department{
		{1, "Executive", sql.NullInt64{}, decimal.NewFromInt(5000000), "Corporate HQ", day(2020, 1, 1)},
		{2, "Sales", parent(101), decimal.NewFromInt(2000000), "Sales Office", day(2020, 1, 1)},
		{3, "Marketing", parent(102), decimal.NewFromInt(1500000), "Marketing Office", day(2020, 2, 1)},
		{4, "Engineering", parent(103), decimal.NewFromInt(8000000), "Tech Center", day(2020, 1, 15)},
		{5, "Human Resources", parent(104), decimal.NewFromInt(800000), "HR Office", day(2020, 3, 1)},
		{6, "Finance", parent(105), decimal.NewFromInt(1200000), "Finance Office", day(2020, 1, 1)},
		{7, "Operations", parent(106), decimal.NewFromInt(3000000), "Operations Center", day(2020, 2, 15)},
		{8, "Customer Service", parent(107), decimal.NewFromInt(1000000), "Support Center", day(2020, 4, 1)},
	}
}

// EngineeringDepartmentID is used by the hierarchy smoke query.
const EngineeringDepartmentID = 4

func salesTerritories() []SalesTerritory {
	return []SalesTerritory{
		{1, "Northeast", "East Coast", 101, decimal.NewFromInt(5000000)},
		{2, "Southeast", "East Coast", 102, decimal.NewFromInt(4500000)},
		{3, "Midwest", "Central", 103, decimal.NewFromInt(6000000)},
		{4, "Southwest", "West Coast", 104, decimal.NewFromInt(4000000)},
		{5, "West Coast", "West Coast", 105, decimal.NewFromInt(7000000)},
		{6, "Northwest", "West Coast", 106, decimal.NewFromInt(3500000)},
	}
}

func courses() []Course {
	return []Course{
		{1, "Introduction to Programming", "Computer Science", 3, "Dr. Smith", "Fall", 2024, 30, 28},
		{2, "Data Structures", "Computer Science", 4, "Dr. Johnson", "Fall", 2024, 25, 24},
		{3, "Database Systems", "Computer Science", 3, "Dr. Williams", "Spring", 2024, 35, 32},
		{4, "Machine Learning", "Computer Science", 4, "Dr. Brown", "Fall", 2024, 20, 18},
		{5, "Calculus I", "Mathematics", 4, "Dr. Davis", "Fall", 2024, 40, 38},
		{6, "Calculus II", "Mathematics", 4, "Dr. Miller", "Spring", 2024, 35, 33},
		{7, "Linear Algebra", "Mathematics", 3, "Dr. Wilson", "Fall", 2024, 30, 29},
		{8, "Introduction to Business", "Business", 3, "Dr. Moore", "Fall", 2024, 50, 47},
		{9, "Financial Accounting", "Business", 3, "Dr. Taylor", "Spring", 2024, 40, 39},
		{10, "Marketing Principles", "Business", 3, "Dr. Anderson", "Fall", 2024, 45, 42},
	}
}

func accounts() []Account {
	opened := day(2020, 1, 1)
	return []Account{
		{1, "Cash", "Asset", decimal.NewFromInt(500000), "USD", true, opened},
		{2, "Accounts Receivable", "Asset", decimal.NewFromInt(750000), "USD", true, opened},
		{3, "Inventory", "Asset", decimal.NewFromInt(1200000), "USD", true, opened},
		{4, "Equipment", "Asset", decimal.NewFromInt(2000000), "USD", true, opened},
		{5, "Accounts Payable", "Liability", decimal.NewFromInt(300000), "USD", true, opened},
		{6, "Loans Payable", "Liability", decimal.NewFromInt(800000), "USD", true, opened},
		{7, "Equity", "Equity", decimal.NewFromInt(3350000), "USD", true, opened},
		{8, "Revenue", "Revenue", decimal.Zero, "USD", true, opened},
		{9, "Cost of Sales", "Expense", decimal.Zero, "USD", true, opened},
		{10, "Operating Expenses", "Expense", decimal.Zero, "USD", true, opened},
	}
}
