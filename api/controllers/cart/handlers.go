package cart

import (
	"net/http"

	"github.com/angelmondragon/cartstore/api/responses"
	"github.com/angelmondragon/cartstore/api/validators"
	"github.com/angelmondragon/cartstore/internal/cartitem"
	"github.com/angelmondragon/cartstore/internal/cartlist"
	"github.com/angelmondragon/cartstore/pkg/enums"
	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/logger"
)

// Controller is the cart controller surface the handlers drive.
type Controller interface {
	Send(cartlist.Action)
	State() cartlist.State
}

// CartFetch renders the current cart view.
func CartFetch(cart Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}
		responses.WriteSuccess(w, cartlist.NewView(cart.State()))
	}
}

// CartLoadItems replaces the cart contents.
func CartLoadItems(cart Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}

		var payload LoadItemsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if cart.State().RequestInProcess() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "order submission in progress"))
			return
		}

		cart.Send(cartlist.ItemsLoaded{Items: payload.toCartItems()})
		responses.WriteSuccess(w, cartlist.NewView(cart.State()))
	}
}

// CartRemoveItem removes one line by id.
func CartRemoveItem(cart Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}

		id, err := validators.ParseUUIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		line, ok := cart.State().Item(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found"))
			return
		}

		cart.Send(cartlist.ItemAction{ID: id, Action: cartitem.DeleteTapped{Product: line.Item.Product}})
		responses.WriteSuccess(w, cartlist.NewView(cart.State()))
	}
}

// CartPay presents the purchase confirmation.
func CartPay(cart Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}
		state := cart.State()
		if state.PayDisabled {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "cart total is zero"))
			return
		}
		if !state.Status.CanTransitionTo(enums.LoadingStatusLoading) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "purchase already "+state.Status.String()))
			return
		}

		cart.Send(cartlist.PayTapped{})
		responses.WriteSuccess(w, cartlist.NewView(cart.State()))
	}
}

// CartConfirm accepts the presented confirmation and starts the order submission.
func CartConfirm(cart Controller, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}
		if cart.State().AlertKind() != enums.AlertKindConfirming {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "no purchase awaiting confirmation"))
			return
		}

		cart.Send(cartlist.ConfirmationAccepted{})
		responses.WriteSuccessStatus(w, http.StatusAccepted, cartlist.NewView(cart.State()))
	}
}

// CartSend answers with the cart view after sending a fixed action. Used for the actions
// that are valid in any state.
func CartSend(cart Controller, action cartlist.Action, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cart == nil {
			responses.WriteError(r.Context(), logg, w, errUnavailable())
			return
		}
		cart.Send(action)
		responses.WriteSuccess(w, cartlist.NewView(cart.State()))
	}
}

func errUnavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "cart controller unavailable")
}
