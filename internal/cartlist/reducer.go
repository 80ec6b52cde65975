package cartlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/cartstore/internal/cartitem"
	"github.com/angelmondragon/cartstore/internal/orders"
	"github.com/angelmondragon/cartstore/internal/store"
	"github.com/angelmondragon/cartstore/pkg/enums"
	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/logger"
	"github.com/angelmondragon/cartstore/pkg/metrics"
	"github.com/angelmondragon/cartstore/pkg/money"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// SubmitTaskName labels the order submission task in logs and metrics.
const SubmitTaskName = "submit-order"

// Deps are the collaborators injected into the cart controller.
type Deps struct {
	Orders  orders.Submitter
	Dismiss func()
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// Reducer drives the cart controller.
type Reducer struct {
	orders  orders.Submitter
	dismiss func()
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	items   cartitem.Reducer
}

func NewReducer(deps Deps) (*Reducer, error) {
	if deps.Orders == nil {
		return nil, errors.New("order submitter required")
	}
	logg := deps.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &Reducer{
		orders:  deps.Orders,
		dismiss: deps.Dismiss,
		logg:    logg,
		metrics: deps.Metrics,
	}, nil
}

func (r *Reducer) Reduce(ctx context.Context, state *State, action Action) []store.Effect[Action] {
	switch a := action.(type) {
	case CloseTapped:
		if r.dismiss == nil {
			return store.None[Action]()
		}
		return []store.Effect[Action]{store.Do[Action](r.dismiss)}

	case ItemAction:
		return r.reduceItem(ctx, state, a)

	case RecomputeTotal:
		state.Total = money.Round(types.SumLineTotals(state.CartItems()))
		state.PayDisabled = state.Total.IsZero()
		return store.None[Action]()

	case PayTapped:
		if state.PayDisabled || !state.Status.CanTransitionTo(enums.LoadingStatusLoading) {
			r.logg.Debug(r.logg.WithField(ctx, "status", state.Status), "cartlist.pay_ignored")
			return store.None[Action]()
		}
		state.Alert = confirmationAlert(state.TotalString())
		return store.None[Action]()

	case ConfirmationCancelled:
		state.dismissAlert(enums.AlertKindConfirming)
		return store.None[Action]()

	case SuccessDismissed:
		state.dismissAlert(enums.AlertKindSucceeded)
		return store.None[Action]()

	case ErrorDismissed:
		state.dismissAlert(enums.AlertKindFailed)
		return store.None[Action]()

	case ConfirmationAccepted:
		if !state.Status.CanTransitionTo(enums.LoadingStatusLoading) {
			r.logg.Debug(r.logg.WithField(ctx, "status", state.Status), "cartlist.confirmation_ignored")
			return store.None[Action]()
		}
		state.Status = enums.LoadingStatusLoading
		state.dismissAlert(enums.AlertKindConfirming)
		items := state.CartItems()
		return []store.Effect[Action]{store.Run(SubmitTaskName, func(ctx context.Context) Action {
			return r.submit(ctx, items)
		})}

	case PurchaseResponse:
		return r.reducePurchase(ctx, state, a)

	case ItemsLoaded:
		state.Items = cartitem.FromItems(a.Items)
		return []store.Effect[Action]{store.Send[Action](RecomputeTotal{})}

	default:
		r.logg.Warn(r.logg.WithField(ctx, "action", store.ActionName(action)), "cartlist.unknown_action")
		return store.None[Action]()
	}
}

func (r *Reducer) reduceItem(ctx context.Context, state *State, a ItemAction) []store.Effect[Action] {
	idx := state.indexOf(a.ID)
	if idx < 0 {
		r.logg.Debug(r.logg.WithField(ctx, "item_id", a.ID.String()), "cartlist.item_not_found")
		return store.None[Action]()
	}

	line := state.Items[idx]
	effects := store.Map(r.items.Reduce(ctx, &line, a.Action), func(child cartitem.Action) Action {
		return ItemAction{ID: a.ID, Action: child}
	})

	switch a.Action.(type) {
	case cartitem.DeleteTapped:
		remaining := make([]cartitem.State, 0, len(state.Items)-1)
		remaining = append(remaining, state.Items[:idx]...)
		remaining = append(remaining, state.Items[idx+1:]...)
		state.Items = remaining
		return append(effects, store.Send[Action](RecomputeTotal{}))
	default:
		updated := append([]cartitem.State(nil), state.Items...)
		updated[idx] = line
		state.Items = updated
		return effects
	}
}

func (r *Reducer) reducePurchase(ctx context.Context, state *State, a PurchaseResponse) []store.Effect[Action] {
	if state.Status != enums.LoadingStatusLoading {
		r.logg.Warn(r.logg.WithField(ctx, "status", state.Status), "cartlist.stale_purchase_response")
		return store.None[Action]()
	}

	if a.Err != nil {
		state.Status = enums.LoadingStatusError
		state.Alert = errorAlert()
		r.metrics.IncSubmission("failure")
		r.logg.Error(ctx, "cartlist.order_failed", a.Err)
		return store.None[Action]()
	}

	state.Status = enums.LoadingStatusSuccess
	state.Alert = successAlert()
	r.metrics.IncSubmission("success")
	r.logg.Info(r.logg.WithField(ctx, "order_message", a.Message), "cartlist.order_submitted")
	return store.None[Action]()
}

func (r *Reducer) submit(ctx context.Context, items []types.CartItem) (result Action) {
	defer func() {
		if rec := recover(); rec != nil {
			result = PurchaseResponse{Err: pkgerrors.Wrap(pkgerrors.CodeOrderSubmission, fmt.Errorf("panic: %v", rec), "submit order")}
		}
	}()

	message, err := r.orders.SubmitOrder(ctx, items)
	if err != nil {
		return PurchaseResponse{Err: pkgerrors.Wrap(pkgerrors.CodeOrderSubmission, err, "submit order")}
	}
	return PurchaseResponse{Message: message}
}
