// Package addtocart is the quantity stepper shown next to a product.
package addtocart

import (
	"context"

	"github.com/angelmondragon/cartstore/internal/store"
	"github.com/angelmondragon/cartstore/pkg/logger"
	"github.com/angelmondragon/cartstore/pkg/metrics"
)

const StoreName = "addtocart"

// State holds the picked quantity. It has no lower bound.
type State struct {
	Count int `json:"count"`
}

type Action interface {
	isAddToCartAction()
}

type Increment struct{}

type Decrement struct{}

func (Increment) isAddToCartAction() {}
func (Decrement) isAddToCartAction() {}

type Reducer struct{}

func (Reducer) Reduce(_ context.Context, state *State, action Action) []store.Effect[Action] {
	switch action.(type) {
	case Increment:
		state.Count++
	case Decrement:
		state.Count--
	}
	return store.None[Action]()
}

type Store = store.Store[State, Action]

// NewStore starts a counter at zero.
func NewStore(ctx context.Context, logg *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	return store.New[State, Action](ctx, State{}, Reducer{},
		store.WithName(StoreName),
		store.WithLogger(logg),
		store.WithMetrics(m),
	)
}
