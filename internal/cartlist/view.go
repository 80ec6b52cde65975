package cartlist

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/cartstore/internal/store"
	"github.com/angelmondragon/cartstore/pkg/enums"
	"github.com/angelmondragon/cartstore/pkg/money"
)

// EmptyCartMessage is shown in place of the list when the cart has no lines.
const EmptyCartMessage = "Oops, your cart is empty!"

// View is the render-ready projection of State.
type View struct {
	Items            []ItemView          `json:"items"`
	Total            string              `json:"total"`
	PayLabel         string              `json:"pay_label"`
	PayDisabled      bool                `json:"pay_disabled"`
	Status           enums.LoadingStatus `json:"status"`
	RequestInProcess bool                `json:"request_in_process"`
	Alert            *AlertView          `json:"alert,omitempty"`
	EmptyMessage     string              `json:"empty_message,omitempty"`
}

type ItemView struct {
	ID        uuid.UUID `json:"id"`
	ProductID int       `json:"product_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image,omitempty"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	LineTotal string    `json:"line_total"`
}

type AlertView struct {
	Kind    enums.AlertKind `json:"kind"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Buttons []ButtonView    `json:"buttons"`
}

// ButtonView names the action by type so a client can echo it back.
type ButtonView struct {
	Label  string           `json:"label"`
	Role   enums.ButtonRole `json:"role"`
	Action string           `json:"action"`
}

func NewView(s State) View {
	items := make([]ItemView, 0, len(s.Items))
	for _, line := range s.Items {
		items = append(items, ItemView{
			ID:        line.ID,
			ProductID: line.Item.Product.ID,
			Title:     line.Item.Product.Title,
			ImageURL:  line.Item.Product.ImageURL,
			Price:     money.FormatUSD(line.Item.Product.Price),
			Quantity:  line.Item.Quantity,
			LineTotal: money.FormatUSD(line.Item.LineTotal()),
		})
	}

	view := View{
		Items:            items,
		Total:            s.TotalString(),
		PayLabel:         "Pay " + s.TotalString(),
		PayDisabled:      s.PayDisabled,
		Status:           s.Status,
		RequestInProcess: s.RequestInProcess(),
		Alert:            newAlertView(s.Alert),
	}
	if s.IsEmpty() {
		view.EmptyMessage = EmptyCartMessage
	}
	return view
}

func newAlertView(a *Alert) *AlertView {
	if a == nil {
		return nil
	}
	buttons := make([]ButtonView, 0, len(a.Buttons))
	for _, b := range a.Buttons {
		buttons = append(buttons, ButtonView{
			Label:  b.Label,
			Role:   b.Role,
			Action: store.ActionName(b.Action),
		})
	}
	return &AlertView{
		Kind:    a.Kind,
		Title:   a.Title,
		Message: a.Message,
		Buttons: buttons,
	}
}
