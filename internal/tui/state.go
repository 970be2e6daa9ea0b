package tui

import "github.com/janekbaraniewski/ecomdash/internal/insights"

// UIState is everything the dashboard remembers between renders. It is reset
// to DefaultState on every start and only changes through Reduce.
//
// Each panel keeps its own top-N value: switching to another insight and back
// shows the rows that were selected before.
type UIState struct {
	Selected      insights.Insight
	TopNProducts  int
	TopNCustomers int
}

func DefaultState() UIState {
	return UIState{
		Selected:      insights.Default(),
		TopNProducts:  insights.DefaultTopN,
		TopNCustomers: insights.DefaultTopN,
	}
}

// TopN returns the range control value of the selected panel. ok is false for
// panels without a range control.
func (s UIState) TopN() (n int, ok bool) {
	switch s.Selected {
	case insights.Products:
		return s.TopNProducts, true
	case insights.Customers:
		return s.TopNCustomers, true
	}
	return 0, false
}

// Action is a state transition understood by Reduce.
type Action interface {
	isAction()
}

// SelectInsight switches the visible panel. Unknown insights are ignored.
type SelectInsight struct {
	Insight insights.Insight
}

// CycleInsight moves the selection Step positions along the selector row,
// wrapping at both ends.
type CycleInsight struct {
	Step int
}

// SetTopN sets the range control of a panel. N is clamped to the dataset size.
type SetTopN struct {
	Insight insights.Insight
	N       int
}

// StepTopN nudges the range control of the selected panel by Delta.
type StepTopN struct {
	Delta int
}

func (SelectInsight) isAction() {}
func (CycleInsight) isAction()  {}
func (SetTopN) isAction()       {}
func (StepTopN) isAction()      {}

func SelectOrderValue() Action { return SelectInsight{Insight: insights.OrderValue} }
func SelectCategories() Action { return SelectInsight{Insight: insights.Categories} }
func SelectProducts() Action   { return SelectInsight{Insight: insights.Products} }
func SelectCustomers() Action  { return SelectInsight{Insight: insights.Customers} }

// Reduce applies a to s and returns the new state.
func Reduce(s UIState, a Action) UIState {
	switch a := a.(type) {
	case SelectInsight:
		if a.Insight.Valid() {
			s.Selected = a.Insight
		}
	case CycleInsight:
		s.Selected = cycleInsight(s.Selected, a.Step)
	case SetTopN:
		switch a.Insight {
		case insights.Products:
			s.TopNProducts = insights.ClampTopN(a.N, insights.MaxTopProducts)
		case insights.Customers:
			s.TopNCustomers = insights.ClampTopN(a.N, insights.MaxTopCustomers)
		}
	case StepTopN:
		if n, ok := s.TopN(); ok {
			return Reduce(s, SetTopN{Insight: s.Selected, N: n + a.Delta})
		}
	}
	return s
}

// topNBounds returns the range of the selected panel's control.
func topNBounds(in insights.Insight) (minN, maxN int) {
	switch in {
	case insights.Products:
		return 1, insights.MaxTopProducts
	case insights.Customers:
		return 1, insights.MaxTopCustomers
	}
	return 0, 0
}

func cycleInsight(cur insights.Insight, step int) insights.Insight {
	all := insights.All()
	idx := cur.Index()
	if idx < 0 {
		idx = 0
	}
	next := (idx + step) % len(all)
	if next < 0 {
		next += len(all)
	}
	return all[next]
}
