package orders

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/types"
)

const defaultQueueName = "orders"

var errEnqueuerRequired = errors.New("order queue client is required")

// Enqueuer appends a payload to a named work queue. pkg/redis.Client satisfies it.
type Enqueuer interface {
	Enqueue(ctx context.Context, queue string, value any) (int64, error)
}

// QueueSubmitter hands orders to a downstream worker through a queue.
type QueueSubmitter struct {
	queue Enqueuer
	name  string
	now   func() time.Time
	newID func() uuid.UUID
}

func NewQueueSubmitter(queue Enqueuer, name string) (*QueueSubmitter, error) {
	if queue == nil {
		return nil, errEnqueuerRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultQueueName
	}
	return &QueueSubmitter{
		queue: queue,
		name:  name,
		now:   time.Now,
		newID: uuid.New,
	}, nil
}

// QueuedOrder is the payload pushed onto the queue.
type QueuedOrder struct {
	OrderID     uuid.UUID        `json:"order_id"`
	Items       []types.CartItem `json:"items"`
	Total       string           `json:"total"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// SubmitOrder enqueues items and returns the generated order id.
func (q *QueueSubmitter) SubmitOrder(ctx context.Context, items []types.CartItem) (string, error) {
	if err := validateItems(items); err != nil {
		return "", err
	}

	order := QueuedOrder{
		OrderID:     q.newID(),
		Items:       append([]types.CartItem(nil), items...),
		Total:       types.SumLineTotals(items).StringFixed(2),
		SubmittedAt: q.now().UTC(),
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal queued order")
	}

	if _, err := q.queue.Enqueue(ctx, q.name, string(payload)); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "enqueue order")
	}
	return order.OrderID.String(), nil
}
