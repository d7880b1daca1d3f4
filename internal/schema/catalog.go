package schema

const (
	Warehouses            = "warehouses"
	Categories            = "categories"
	Products              = "products"
	Customers             = "customers"
	Orders                = "orders"
	OrderItems            = "order_items"
	Departments           = "departments"
	Employees             = "employees"
	Salaries              = "salaries"
	SalesTerritories      = "sales_territories"
	SalesReps             = "sales_reps"
	SalesFacts            = "sales"
	MonthlyRevenue        = "monthly_revenue"
	Students              = "students"
	Courses               = "courses"
	StudentEnrollments    = "student_enrollments"
	Accounts              = "accounts"
	FinancialTransactions = "financial_transactions"
	InventoryMovements    = "inventory_movements"
)

// Catalog returns every fixture table in declaration order. Referenced
// tables always precede the tables that reference them.
func Catalog() []Table {
	return []Table{
		{Name: Warehouses, Domain: Retail, Columns: []Column{
			pk("warehouse_id"),
			col("warehouse_name", Text()).required(),
			col("location", Text()).required(),
			col("capacity", Integer()),
			col("manager_id", Integer()),
		}},
		{Name: Categories, Domain: Retail, Columns: []Column{
			pk("category_id"),
			col("category_name", Text()).required(),
			ref("parent_category_id", Categories, "category_id"),
			col("description", Text()),
		}},
		{Name: Products, Domain: Retail, Columns: []Column{
			pk("product_id"),
			col("product_name", Text()).required(),
			ref("category_id", Categories, "category_id"),
			col("price", Decimal(10, 2)).required(),
			col("cost", Decimal(10, 2)),
			col("weight_kg", Decimal(5, 2)),
			col("dimensions", Text()),
			col("created_date", Date()),
			col("is_active", Boolean()).withDefault(true),
		}},
		{Name: Customers, Domain: Retail, Columns: []Column{
			pk("customer_id"),
			col("first_name", Text()).required(),
			col("last_name", Text()).required(),
			col("email", Text()).unique(),
			col("phone", Text()),
			col("date_of_birth", Date()),
			col("registration_date", Date()),
			col("city", Text()),
			col("state", Text()),
			col("country", Text()).withDefault("USA"),
			col("customer_segment", Text()),
			col("is_vip", Boolean()).withDefault(false),
			col("total_spent", Decimal(10, 2)).withDefault(0),
		}},
		{Name: Orders, Domain: Retail, Columns: []Column{
			pk("order_id"),
			ref("customer_id", Customers, "customer_id"),
			col("order_date", Date()).required(),
			col("order_status", Text()),
			col("shipping_address", Text()),
			col("billing_address", Text()),
			col("payment_method", Text()),
			col("subtotal", Decimal(10, 2)),
			col("tax_amount", Decimal(10, 2)),
			col("shipping_cost", Decimal(10, 2)),
			col("total_amount", Decimal(10, 2)),
			ref("warehouse_id", Warehouses, "warehouse_id"),
		}},
		{Name: OrderItems, Domain: Retail, Columns: []Column{
			pk("order_item_id"),
			ref("order_id", Orders, "order_id"),
			ref("product_id", Products, "product_id"),
			col("quantity", Integer()).required(),
			col("unit_price", Decimal(10, 2)),
			col("total_price", Decimal(10, 2)),
		}},
		{Name: Departments, Domain: HR, Columns: []Column{
			pk("department_id"),
			col("department_name", Text()).required(),
			col("manager_id", Integer()),
			col("budget", Decimal(12, 2)),
			col("location", Text()),
			col("established_date", Date()),
		}},
		{Name: Employees, Domain: HR, Columns: []Column{
			pk("employee_id"),
			col("first_name", Text()).required(),
			col("last_name", Text()).required(),
			col("email", Text()).unique(),
			col("hire_date", Date()),
			ref("department_id", Departments, "department_id"),
			col("job_title", Text()),
			ref("manager_id", Employees, "employee_id"),
			col("salary", Decimal(10, 2)),
			col("commission_rate", Decimal(5, 2)),
			col("is_active", Boolean()).withDefault(true),
		}},
		{Name: Salaries, Domain: HR, Columns: []Column{
			pk("salary_id"),
			ref("employee_id", Employees, "employee_id"),
			col("salary_amount", Decimal(10, 2)),
			col("effective_date", Date()),
			col("end_date", Date()),
		}},
		{Name: SalesTerritories, Domain: Sales, Columns: []Column{
			pk("territory_id"),
			col("territory_name", Text()).required(),
			col("region", Text()),
			col("sales_rep_id", Integer()),
			col("target_revenue", Decimal(12, 2)),
		}},
		{Name: SalesReps, Domain: Sales, Columns: []Column{
			pk("rep_id"),
			col("rep_name", Text()).required(),
			ref("territory_id", SalesTerritories, "territory_id"),
			col("hire_date", Date()),
			col("commission_rate", Decimal(5, 2)),
			col("quota", Decimal(10, 2)),
		}},
		{Name: SalesFacts, Domain: Sales, Columns: []Column{
			pk("sale_id"),
			ref("rep_id", SalesReps, "rep_id"),
			ref("territory_id", SalesTerritories, "territory_id"),
			col("sale_date", Date()),
			ref("product_id", Products, "product_id"),
			col("quantity", Integer()),
			col("unit_price", Decimal(10, 2)),
			col("total_amount", Decimal(10, 2)),
			col("commission_earned", Decimal(10, 2)),
		}},
		{Name: MonthlyRevenue, Domain: Sales, Columns: []Column{
			pk("month_id"),
			col("year", Integer()),
			col("month", Integer()),
			col("revenue", Decimal(12, 2)),
			col("expenses", Decimal(12, 2)),
			col("profit", Decimal(12, 2)),
			col("customer_count", Integer()),
			col("order_count", Integer()),
		}},
		{Name: Students, Domain: Education, Columns: []Column{
			pk("student_id"),
			col("first_name", Text()).required(),
			col("last_name", Text()).required(),
			col("email", Text()),
			col("date_of_birth", Date()),
			col("enrollment_date", Date()),
			col("major", Text()),
			col("gpa", Decimal(3, 2)),
			col("credits_earned", Integer()),
			col("graduation_date", Date()),
			col("is_active", Boolean()).withDefault(true),
		}},
		{Name: Courses, Domain: Education, Columns: []Column{
			pk("course_id"),
			col("course_name", Text()).required(),
			col("department", Text()),
			col("credits", Integer()),
			col("instructor", Text()),
			col("semester", Text()),
			col("year", Integer()),
			col("max_enrollment", Integer()),
			col("current_enrollment", Integer()),
		}},
		{Name: StudentEnrollments, Domain: Education, Columns: []Column{
			pk("enrollment_id"),
			ref("student_id", Students, "student_id"),
			ref("course_id", Courses, "course_id"),
			col("enrollment_date", Date()),
			col("grade", Decimal(3, 2)),
			col("status", Text()),
		}},
		{Name: Accounts, Domain: Finance, Columns: []Column{
			pk("account_id"),
			col("account_name", Text()).required(),
			col("account_type", Text()),
			col("balance", Decimal(12, 2)),
			col("currency", Text()).withDefault("USD"),
			col("is_active", Boolean()).withDefault(true),
			col("created_date", Date()),
		}},
		{Name: FinancialTransactions, Domain: Finance, Columns: []Column{
			pk("transaction_id"),
			ref("account_id", Accounts, "account_id"),
			col("transaction_date", Date()),
			col("description", Text()),
			col("debit_amount", Decimal(12, 2)),
			col("credit_amount", Decimal(12, 2)),
			col("reference_number", Text()),
		}},
		{Name: InventoryMovements, Domain: Inventory, Columns: []Column{
			pk("movement_id"),
			ref("product_id", Products, "product_id"),
			ref("warehouse_id", Warehouses, "warehouse_id"),
			col("movement_type", Text()),
			col("quantity", Integer()),
			col("movement_date", Date()),
			col("reference_number", Text()),
		}},
	}
}

// Lookup returns the catalog table with the given name.
func Lookup(name string) (Table, bool) {
	for _, t := range Catalog() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// TablesFor returns the catalog tables belonging to the given domains, in
// catalog order.
func TablesFor(domains []Domain) []Table {
	set := domainSet(domains)
	var tables []Table
	for _, t := range Catalog() {
		if set[t.Domain] {
			tables = append(tables, t)
		}
	}
	return tables
}

func TableNames(tables []Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

var indexes = []Index{
	{"idx_orders_customer_date", Orders, []string{"customer_id", "order_date"}},
	{"idx_orders_date", Orders, []string{"order_date"}},
	{"idx_orders_status", Orders, []string{"order_status"}},
	{"idx_order_items_order", OrderItems, []string{"order_id"}},
	{"idx_order_items_product", OrderItems, []string{"product_id"}},
	{"idx_products_category", Products, []string{"category_id"}},
	{"idx_products_price", Products, []string{"price"}},
	{"idx_employees_department", Employees, []string{"department_id"}},
	{"idx_employees_manager", Employees, []string{"manager_id"}},
	{"idx_sales_rep_date", SalesFacts, []string{"rep_id", "sale_date"}},
	{"idx_sales_date", SalesFacts, []string{"sale_date"}},
	{"idx_sales_territory", SalesFacts, []string{"territory_id"}},
	{"idx_salaries_employee", Salaries, []string{"employee_id"}},
	{"idx_salaries_date", Salaries, []string{"effective_date"}},
	{"idx_customers_segment", Customers, []string{"customer_segment"}},
	{"idx_customers_city", Customers, []string{"city"}},
	{"idx_financial_account", FinancialTransactions, []string{"account_id"}},
	{"idx_financial_date", FinancialTransactions, []string{"transaction_date"}},
	{"idx_inventory_product", InventoryMovements, []string{"product_id"}},
	{"idx_inventory_warehouse", InventoryMovements, []string{"warehouse_id"}},
}

// Indexes returns the fixed secondary index list restricted to the given tables.
func Indexes(tables []Table) []Index {
	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t.Name] = true
	}
	var out []Index
	for _, idx := range indexes {
		if present[idx.Table] {
			out = append(out, idx)
		}
	}
	return out
}
