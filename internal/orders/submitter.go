// Package orders holds the boundary the cart uses to hand a finished order to the outside world.
package orders

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cartstore/pkg/config"
	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// Submitter sends the snapshot of cart items as an order and returns a confirmation message.
type Submitter interface {
	SubmitOrder(ctx context.Context, items []types.CartItem) (string, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, items []types.CartItem) (string, error)

func (f SubmitterFunc) SubmitOrder(ctx context.Context, items []types.CartItem) (string, error) {
	return f(ctx, items)
}

// NewFromConfig picks the submitter named by cfg. queue is only consulted for the queue kind.
func NewFromConfig(cfg config.OrdersConfig, queue Enqueuer) (Submitter, error) {
	switch cfg.Kind() {
	case config.SubmitterStatic:
		return NewStaticSubmitter(cfg.StaticMessage), nil
	case config.SubmitterHTTP:
		return NewHTTPSubmitter(cfg.Endpoint, WithTimeout(cfg.Timeout))
	case config.SubmitterQueue:
		return NewQueueSubmitter(queue, cfg.QueueKey)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown order submitter %q", cfg.Submitter))
	}
}

func validateItems(items []types.CartItem) error {
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive").
				WithDetails(map[string]any{"index": i, "product_id": item.Product.ID})
		}
	}
	return nil
}
