// internal/domain/cart/reducer_test.go
package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id uint, price int64) ProductSnapshot {
	return ProductSnapshot{
		ID:      id,
		Slug:    "test-product",
		Name:    "Test Product",
		Price:   price,
		InStock: true,
	}
}

func discounted(id uint, price, discount int64) ProductSnapshot {
	p := snapshot(id, price)
	p.DiscountPrice = &discount
	return p
}

func TestApplyAddItem_NewLineAppended(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 2, Size: "M", Color: "Black"})

	require.Len(t, state.Lines, 1)
	assert.Equal(t, uint(1), state.Lines[0].Product.ID)
	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, int64(5998), state.Total())
}

func TestApplyAddItem_SameTripleAccumulatesInPlace(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(2, 1999), Quantity: 1, Size: "L", Color: "White"})
	state = Apply(state, AddItem{Product: snapshot(1, 2999), Quantity: 3, Size: "M", Color: "Black"})

	require.Len(t, state.Lines, 2)
	// The accumulated line keeps its original position
	assert.Equal(t, uint(1), state.Lines[0].Product.ID)
	assert.Equal(t, 4, state.Lines[0].Quantity)
	assert.Equal(t, 1, state.Lines[1].Quantity)
}

func TestApplyAddItem_DifferentSizeOrColorIsNewLine(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "L", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "White"})

	assert.Len(t, state.Lines, 3)
	assert.Equal(t, 3, state.ItemCount())
}

func TestApplyRemoveItem(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 2, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(2, 1999), Quantity: 1, Size: "L", Color: "White"})

	state = Apply(state, RemoveItem{ProductID: 1, Size: "M", Color: "Black"})

	require.Len(t, state.Lines, 1)
	assert.Equal(t, uint(2), state.Lines[0].Product.ID)
	assert.Equal(t, int64(1999), state.Total())
}

func TestApplyRemoveItem_AbsentLineIsNoOp(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "Black"})

	after := Apply(state, RemoveItem{ProductID: 99, Size: "M", Color: "Black"})
	assert.Empty(t, cmp.Diff(state.Lines, after.Lines))

	// Same product, different color: still no match
	after = Apply(state, RemoveItem{ProductID: 1, Size: "M", Color: "White"})
	assert.Empty(t, cmp.Diff(state.Lines, after.Lines))
}

func TestApplyUpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 5, Size: "M", Color: "Black"})

	state = Apply(state, UpdateQuantity{ProductID: 1, Size: "M", Color: "Black", Quantity: 2})

	require.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, int64(5998), state.Total())
}

func TestApplyUpdateQuantity_ZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 3, Size: "M", Color: "Black"})
		state = Apply(state, UpdateQuantity{ProductID: 1, Size: "M", Color: "Black", Quantity: quantity})

		assert.Empty(t, state.Lines, "quantity %d should remove the line", quantity)
		assert.Equal(t, int64(0), state.Total())
	}
}

func TestApplyUpdateQuantity_AbsentLineIsNoOp(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "Black"})

	after := Apply(state, UpdateQuantity{ProductID: 99, Size: "M", Color: "Black", Quantity: 10})

	assert.Empty(t, cmp.Diff(state.Lines, after.Lines))
}

func TestApplyClear(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 2, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(2, 1999), Quantity: 1, Size: "L", Color: "White"})

	state = Apply(state, Clear{})

	assert.Empty(t, state.Lines)
	assert.Equal(t, 0, state.ItemCount())
	assert.Equal(t, int64(0), state.Total())
}

func TestApplyLoad_ReplacesState(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 9, Size: "S", Color: "Red"})

	restored := []Line{
		{Product: snapshot(2, 1500), Size: "M", Color: "Black", Quantity: 2},
		{Product: snapshot(3, 2500), Size: "L", Color: "White", Quantity: 1},
	}
	state = Apply(state, Load{Lines: restored})

	require.Len(t, state.Lines, 2)
	assert.Equal(t, int64(5500), state.Total())
	assert.Equal(t, 3, state.ItemCount())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 1, Size: "M", Color: "Black"})
	before := make([]Line, len(state.Lines))
	copy(before, state.Lines)

	Apply(state, AddItem{Product: snapshot(1, 2999), Quantity: 5, Size: "M", Color: "Black"})
	Apply(state, UpdateQuantity{ProductID: 1, Size: "M", Color: "Black", Quantity: 7})
	Apply(state, RemoveItem{ProductID: 1, Size: "M", Color: "Black"})

	assert.Empty(t, cmp.Diff(before, state.Lines))
}

func TestTotal_UsesDiscountPriceWhenPresent(t *testing.T) {
	state := Apply(State{}, AddItem{Product: discounted(1, 2999, 2499), Quantity: 2, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(2, 3499), Quantity: 1, Size: "L", Color: "Navy"})

	// 2*2499 + 1*3499
	assert.Equal(t, int64(8497), state.Total())
}

func TestTotal_RecomputedAfterEveryTransition(t *testing.T) {
	state := State{}
	assert.Equal(t, int64(0), state.Total())

	state = Apply(state, AddItem{Product: snapshot(1, 10000), Quantity: 2, Size: "M", Color: "Black"})
	assert.Equal(t, int64(20000), state.Total())

	state = Apply(state, AddItem{Product: discounted(2, 6000, 4500), Quantity: 1, Size: "L", Color: "White"})
	assert.Equal(t, int64(24500), state.Total())

	state = Apply(state, UpdateQuantity{ProductID: 1, Size: "M", Color: "Black", Quantity: 1})
	assert.Equal(t, int64(14500), state.Total())

	state = Apply(state, RemoveItem{ProductID: 2, Size: "L", Color: "White"})
	assert.Equal(t, int64(10000), state.Total())

	state = Apply(state, Clear{})
	assert.Equal(t, int64(0), state.Total())
}

func TestComputeTotals(t *testing.T) {
	state := Apply(State{}, AddItem{Product: snapshot(1, 2999), Quantity: 2, Size: "M", Color: "Black"})
	state = Apply(state, AddItem{Product: snapshot(2, 1999), Quantity: 3, Size: "L", Color: "White"})

	totals := state.ComputeTotals()

	assert.Equal(t, 2, totals.LineCount)
	assert.Equal(t, 5, totals.TotalQuantity)
	assert.Equal(t, int64(11995), totals.Total)
}
