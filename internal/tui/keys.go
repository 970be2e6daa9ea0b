package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	OrderValue key.Binding
	Categories key.Binding
	Products   key.Binding
	Customers  key.Binding
	Next       key.Binding
	Prev       key.Binding

	Less   key.Binding
	More   key.Binding
	TopMin key.Binding
	TopMax key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	OrderValue: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "order value")),
	Categories: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "categories")),
	Products:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "products")),
	Customers:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "customers")),
	Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),

	Less:   key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/→", "top N")),
	More:   key.NewBinding(key.WithKeys("right", "l", "+", "=")),
	TopMin: key.NewBinding(key.WithKeys("home"), key.WithHelp("home/end", "min/max N")),
	TopMax: key.NewBinding(key.WithKeys("end")),

	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),

	Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// shortHelp is the binding list shown in the footer.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.OrderValue, k.Categories, k.Products, k.Customers, k.Less, k.Up, k.Help, k.Quit}
}
