// Package insights holds the fixed e-commerce datasets shown by the dashboard
// and the small helpers used to slice and format them.
package insights

import (
	"fmt"
	"strings"
)

// Insight identifies one of the selectable dashboard views.
type Insight string

const (
	OrderValue Insight = "order_value"
	Categories Insight = "categories"
	Products   Insight = "products"
	Customers  Insight = "customers"
)

type insightMeta struct {
	button string
	header string
}

var insightOrder = []Insight{OrderValue, Categories, Products, Customers}

var metaByInsight = map[Insight]insightMeta{
	OrderValue: {button: "📦 Order Value", header: "📦 Order Value Analysis (Min – Max – Avg)"},
	Categories: {button: "🏷 Categories", header: "🏷 Top Selling Categories"},
	Products:   {button: "🔥 Products", header: "🔥 Best Selling Products"},
	Customers:  {button: "👑 Customers", header: "👑 Top Customers"},
}

// All returns the insights in selector order.
func All() []Insight {
	return append([]Insight(nil), insightOrder...)
}

// Default is the insight shown when the dashboard starts.
func Default() Insight { return OrderValue }

// Parse accepts the canonical id ("order_value"), a dashed or spaced variant,
// or the 1-based selector position.
func Parse(raw string) (Insight, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "order_value", "order", "1":
		return OrderValue, nil
	case "categories", "category", "2":
		return Categories, nil
	case "products", "product", "3":
		return Products, nil
	case "customers", "customer", "4":
		return Customers, nil
	}
	return "", fmt.Errorf("unknown insight %q (want one of %s)", raw, strings.Join(ids(), ", "))
}

func ids() []string {
	out := make([]string, 0, len(insightOrder))
	for _, in := range insightOrder {
		out = append(out, string(in))
	}
	return out
}

// Valid reports whether i is one of the four known insights.
func (i Insight) Valid() bool {
	_, ok := metaByInsight[i]
	return ok
}

// Index is the 0-based selector position, or -1 for unknown values.
func (i Insight) Index() int {
	for idx, in := range insightOrder {
		if in == i {
			return idx
		}
	}
	return -1
}

// Button is the selector label.
func (i Insight) Button() string { return metaByInsight[i].button }

// Header is the title of the panel rendered for the insight.
func (i Insight) Header() string { return metaByInsight[i].header }

// HasTopN reports whether the panel carries a top-N range control.
func (i Insight) HasTopN() bool {
	return i == Products || i == Customers
}
