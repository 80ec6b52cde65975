package cartitem

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cartstore/pkg/types"
)

func TestDeleteLeavesStateUntouched(t *testing.T) {
	product := types.Product{ID: 7, Title: "Backpack", Price: decimal.RequireFromString("109.95")}
	state := New(types.CartItem{Product: product, Quantity: 2})
	before := state

	effects := Reducer{}.Reduce(context.Background(), &state, DeleteTapped{Product: product})

	if len(effects) != 0 {
		t.Fatalf("expected no effects, got %d", len(effects))
	}
	if state.ID != before.ID || state.Item.Quantity != before.Item.Quantity {
		t.Fatalf("state mutated: %+v", state)
	}
}

func TestFromItemsAssignsDistinctIDsInOrder(t *testing.T) {
	items := []types.CartItem{
		{Product: types.Product{ID: 1}, Quantity: 1},
		{Product: types.Product{ID: 2}, Quantity: 3},
		{Product: types.Product{ID: 1}, Quantity: 1},
	}

	states := FromItems(items)

	if len(states) != len(items) {
		t.Fatalf("expected %d states, got %d", len(items), len(states))
	}
	seen := map[uuid.UUID]struct{}{}
	for i, st := range states {
		if st.ID == uuid.Nil {
			t.Fatalf("state %d has nil id", i)
		}
		if _, dup := seen[st.ID]; dup {
			t.Fatalf("duplicate id %s", st.ID)
		}
		seen[st.ID] = struct{}{}
		if st.Item.Product.ID != items[i].Product.ID {
			t.Fatalf("order not preserved at %d", i)
		}
	}
}
