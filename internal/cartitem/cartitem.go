// Package cartitem holds the state of a single cart line and the intents it can raise.
package cartitem

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/cartstore/internal/store"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// State identifies one line of the cart. It is replaced, never edited.
type State struct {
	ID   uuid.UUID      `json:"id"`
	Item types.CartItem `json:"item"`
}

// New wraps item with a fresh identity.
func New(item types.CartItem) State {
	return State{ID: uuid.New(), Item: item}
}

// FromItems wraps items in order, each with a fresh identity.
func FromItems(items []types.CartItem) []State {
	states := make([]State, 0, len(items))
	for _, item := range items {
		states = append(states, New(item))
	}
	return states
}

// Action is an intent raised by a cart line.
type Action interface {
	isCartItemAction()
}

// DeleteTapped asks the owner to remove the line holding Product.
type DeleteTapped struct {
	Product types.Product
}

func (DeleteTapped) isCartItemAction() {}

// Reducer is the per-line reducer. A line has no transitional state of its own, so every
// action passes through unchanged for the owner to handle.
type Reducer struct{}

func (Reducer) Reduce(_ context.Context, _ *State, _ Action) []store.Effect[Action] {
	return store.None[Action]()
}
