package cartlist

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/cartstore/internal/cartitem"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// Action is anything the cart controller reduces.
type Action interface {
	isCartListAction()
}

// CloseTapped asks the owner to dismiss the cart.
type CloseTapped struct{}

// ItemAction carries an intent raised by the line with the given id.
type ItemAction struct {
	ID     uuid.UUID
	Action cartitem.Action
}

// RecomputeTotal sums price times quantity over every line.
type RecomputeTotal struct{}

// PayTapped presents the purchase confirmation.
type PayTapped struct{}

type ConfirmationAccepted struct{}

type ConfirmationCancelled struct{}

type SuccessDismissed struct{}

type ErrorDismissed struct{}

// PurchaseResponse is the settled result of an order submission. Err is nil on success.
type PurchaseResponse struct {
	Message string
	Err     error
}

// ItemsLoaded replaces every line with items, each under a fresh id.
type ItemsLoaded struct {
	Items []types.CartItem
}

func (CloseTapped) isCartListAction()           {}
func (ItemAction) isCartListAction()            {}
func (RecomputeTotal) isCartListAction()        {}
func (PayTapped) isCartListAction()             {}
func (ConfirmationAccepted) isCartListAction()  {}
func (ConfirmationCancelled) isCartListAction() {}
func (SuccessDismissed) isCartListAction()      {}
func (ErrorDismissed) isCartListAction()        {}
func (PurchaseResponse) isCartListAction()      {}
func (ItemsLoaded) isCartListAction()           {}
