package insights

import "github.com/samber/lo"

// DefaultTopN is the initial value of every top-N range control.
const DefaultTopN = 5

// MaxTopProducts and MaxTopCustomers bound the range controls.
var (
	MaxTopProducts  = len(productRecords)
	MaxTopCustomers = len(customerRecords)
)

// ClampTopN keeps n inside [1, size]. An empty dataset clamps to 0.
func ClampTopN(n, size int) int {
	if size < 1 {
		return 0
	}
	return lo.Clamp(n, 1, size)
}

// TopProducts returns the first n products in dataset order.
func TopProducts(n int) []ProductRecord {
	rows := ProductSales()
	return rows[:ClampTopN(n, len(rows))]
}

// TopCustomers returns the first n customers in dataset order.
func TopCustomers(n int) []CustomerRecord {
	rows := CustomerSpend()
	return rows[:ClampTopN(n, len(rows))]
}

// Shares converts values into percentages of their sum. A zero sum yields
// all-zero shares.
func Shares(values []float64) []float64 {
	total := lo.Sum(values)
	return lo.Map(values, func(v float64, _ int) float64 {
		if total == 0 {
			return 0
		}
		return v / total * 100
	})
}

// TopCategory returns the category with the largest quantity sold.
func TopCategory() CategoryRecord {
	return lo.MaxBy(categoryRecords, func(a, b CategoryRecord) bool {
		return a.TotalSold > b.TotalSold
	})
}
