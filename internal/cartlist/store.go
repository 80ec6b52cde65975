package cartlist

import (
	"context"

	"github.com/angelmondragon/cartstore/internal/store"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// StoreName labels the cart controller in logs and metrics.
const StoreName = "cartlist"

// Store is a running cart controller.
type Store = store.Store[State, Action]

// NewStore starts a cart controller over items and computes its first total.
// Closing the store abandons an in-flight order submission.
func NewStore(ctx context.Context, items []types.CartItem, deps Deps) (*Store, error) {
	reducer, err := NewReducer(deps)
	if err != nil {
		return nil, err
	}
	s, err := store.New[State, Action](ctx, NewState(items), reducer,
		store.WithName(StoreName),
		store.WithLogger(deps.Logger),
		store.WithMetrics(deps.Metrics),
	)
	if err != nil {
		return nil, err
	}
	s.Send(RecomputeTotal{})
	return s, nil
}
