// Package cartlist is the cart controller: it owns the cart lines, the running total and the
// purchase flow, and routes line intents to the cart item reducer.
package cartlist

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cartstore/internal/cartitem"
	"github.com/angelmondragon/cartstore/pkg/enums"
	"github.com/angelmondragon/cartstore/pkg/money"
	"github.com/angelmondragon/cartstore/pkg/types"
)

// State is the cart controller state. Items is replaced on every change, never edited in place.
type State struct {
	Status      enums.LoadingStatus `json:"status"`
	Items       []cartitem.State    `json:"items"`
	Total       decimal.Decimal     `json:"total"`
	PayDisabled bool                `json:"pay_disabled"`
	Alert       *Alert              `json:"alert,omitempty"`
}

// NewState seeds a controller with items. Total stays zero until RecomputeTotal runs.
func NewState(items []types.CartItem) State {
	return State{
		Status: enums.LoadingStatusNotStarted,
		Items:  cartitem.FromItems(items),
		Total:  decimal.Zero,
	}
}

// TotalString renders Total as shown on the pay button.
func (s State) TotalString() string {
	return money.FormatUSD(s.Total)
}

func (s State) RequestInProcess() bool {
	return s.Status == enums.LoadingStatusLoading
}

func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// CartItems returns the bare items in display order.
func (s State) CartItems() []types.CartItem {
	items := make([]types.CartItem, 0, len(s.Items))
	for _, line := range s.Items {
		items = append(items, line.Item)
	}
	return items
}

// Item looks up a line by id.
func (s State) Item(id uuid.UUID) (cartitem.State, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.Items[idx], true
	}
	return cartitem.State{}, false
}

func (s State) indexOf(id uuid.UUID) int {
	for i, line := range s.Items {
		if line.ID == id {
			return i
		}
	}
	return -1
}

// AlertKind reports the presented alert, or "" when none is shown.
func (s State) AlertKind() enums.AlertKind {
	if s.Alert == nil {
		return ""
	}
	return s.Alert.Kind
}

func (s *State) dismissAlert(kind enums.AlertKind) {
	if s.Alert != nil && s.Alert.Kind == kind {
		s.Alert = nil
	}
}
