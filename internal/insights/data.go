package insights

// Page literals.
const (
	PageTitle   = "🧠 Smart E-Commerce Dashboard"
	PageCaption = "Business insights dashboard – interactive version for course"
	FooterNote  = "✅ Interactive Dashboard loaded successfully – ready for course use"
)

// Panel notes.
const (
	OrderValueNote = "📌 Shows the minimum, maximum, and average order value to understand " +
		"customer spending behavior and pricing performance."
	CategoriesNote = "📌 Clothing generates the highest quantity sold, " +
		"making it the strongest performing category."
	ProductsNote = "📌 Top selling products highlight where to focus production, " +
		"inventory planning, and promotional campaigns."
	CustomersNote = "📌 Identifying high-value customers helps design loyalty programs " +
		"and maintain premium customer service."
)

// OrderValueStats summarizes order values across all orders.
type OrderValueStats struct {
	Min float64
	Max float64
	Avg float64
}

// CategoryRecord is the total quantity sold in one product category.
type CategoryRecord struct {
	Category  string
	TotalSold int
}

// ProductRecord is the number of units sold of one product.
type ProductRecord struct {
	Product string
	Sales   int
}

// CustomerRecord is the lifetime spend of one customer in dollars.
type CustomerRecord struct {
	Customer   string
	TotalSpend float64
}

var orderValueStats = OrderValueStats{
	Min: 7.27,
	Max: 138271.15,
	Avg: 9094.97,
}

// Display order is insertion order, not sorted.
var categoryRecords = []CategoryRecord{
	{Category: "Clothing", TotalSold: 204204},
	{Category: "Food & Groceries", TotalSold: 171014},
	{Category: "Books", TotalSold: 170506},
	{Category: "Toys & Games", TotalSold: 158441},
	{Category: "Pet Supplies", TotalSold: 157479},
	{Category: "Electronics", TotalSold: 151281},
	{Category: "Furniture", TotalSold: 137849},
	{Category: "Sports & Outdoors", TotalSold: 137255},
	{Category: "Accessories", TotalSold: 136754},
	{Category: "Beauty & Personal Care", TotalSold: 114981},
	{Category: "Health & Wellness", TotalSold: 88628},
	{Category: "Home & Kitchen", TotalSold: 79273},
}

// Sorted by sales, descending.
var productRecords = []ProductRecord{
	{Product: "Athletic Sports Bra", Sales: 23554},
	{Product: "Hiking Gaiters", Sales: 23194},
	{Product: "Sweet Potato and Chickpea Bowl", Sales: 23173},
	{Product: "Fashionable Fanny Pack", Sales: 23123},
	{Product: "Pet Training Clicker", Sales: 23092},
}

// Sorted by total spend, descending.
var customerRecords = []CustomerRecord{
	{Customer: "Redd Fordy", TotalSpend: 203162.32},
	{Customer: "Tobey Basnall", TotalSpend: 196857.47},
	{Customer: "Georgy Sharper", TotalSpend: 182229.21},
	{Customer: "Kirk Riddington", TotalSpend: 167434.15},
	{Customer: "Alexandr Benneyworth", TotalSpend: 166332.76},
}

// OrderValues returns the order value summary.
func OrderValues() OrderValueStats { return orderValueStats }

// CategoryTotals returns a copy of the category dataset.
func CategoryTotals() []CategoryRecord {
	return append([]CategoryRecord(nil), categoryRecords...)
}

// ProductSales returns a copy of the product dataset.
func ProductSales() []ProductRecord {
	return append([]ProductRecord(nil), productRecords...)
}

// CustomerSpend returns a copy of the customer dataset.
func CustomerSpend() []CustomerRecord {
	return append([]CustomerRecord(nil), customerRecords...)
}
