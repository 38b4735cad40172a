// internal/domain/cart/reducer.go
package cart

// State is the cart's line sequence. Totals are derived, never held.
type State struct {
	Lines []Line
}

// Action is a cart state transition. The concrete types below form a
// closed set; Apply handles each one.
type Action interface {
	isCartAction()
}

// AddItem appends a new line, or accumulates quantity in place when a
// line with the same (product id, size, color) already exists.
type AddItem struct {
	Product  ProductSnapshot
	Quantity int
	Size     string
	Color    string
}

// RemoveItem deletes the line matching the triple; no-op when absent
type RemoveItem struct {
	ProductID uint
	Size      string
	Color     string
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// A value of zero or less removes the line. No-op when absent.
type UpdateQuantity struct {
	ProductID uint
	Size      string
	Color     string
	Quantity  int
}

// Clear empties the cart
type Clear struct{}

// Load replaces the state with lines restored from storage
type Load struct {
	Lines []Line
}

func (AddItem) isCartAction()        {}
func (RemoveItem) isCartAction()     {}
func (UpdateQuantity) isCartAction() {}
func (Clear) isCartAction()          {}
func (Load) isCartAction()           {}

// Apply is the pure transition function: it returns the state after the
// action without mutating its input. All cart invariants live here.
func Apply(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		return applyAdd(state, a)

	case RemoveItem:
		return applyRemove(state, a.ProductID, a.Size, a.Color)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return applyRemove(state, a.ProductID, a.Size, a.Color)
		}
		lines := make([]Line, len(state.Lines))
		copy(lines, state.Lines)
		for i := range lines {
			if lines[i].Matches(a.ProductID, a.Size, a.Color) {
				lines[i].Quantity = a.Quantity
				break
			}
		}
		return State{Lines: lines}

	case Clear:
		return State{Lines: []Line{}}

	case Load:
		lines := make([]Line, len(a.Lines))
		copy(lines, a.Lines)
		return State{Lines: lines}

	default:
		return state
	}
}

func applyAdd(state State, a AddItem) State {
	lines := make([]Line, len(state.Lines))
	copy(lines, state.Lines)

	// Duplicate triple accumulates quantity on the existing line,
	// preserving its position in the sequence
	for i := range lines {
		if lines[i].Matches(a.Product.ID, a.Size, a.Color) {
			lines[i].Quantity += a.Quantity
			return State{Lines: lines}
		}
	}

	lines = append(lines, Line{
		Product:  a.Product,
		Size:     a.Size,
		Color:    a.Color,
		Quantity: a.Quantity,
	})
	return State{Lines: lines}
}

func applyRemove(state State, productID uint, size, color string) State {
	lines := make([]Line, 0, len(state.Lines))
	for _, line := range state.Lines {
		if !line.Matches(productID, size, color) {
			lines = append(lines, line)
		}
	}
	return State{Lines: lines}
}

// Total returns the sum of line subtotals
func (s State) Total() int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount returns the sum of quantities across all lines
func (s State) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// ComputeTotals derives the totals for the current line sequence
func (s State) ComputeTotals() Totals {
	return Totals{
		LineCount:     len(s.Lines),
		TotalQuantity: s.ItemCount(),
		Total:         s.Total(),
	}
}
