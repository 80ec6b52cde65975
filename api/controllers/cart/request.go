package cart

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/cartstore/api/validators"
	"github.com/angelmondragon/cartstore/pkg/types"
)

const maxTitleLength = 200

// LoadItemsRequest replaces the cart contents.
type LoadItemsRequest struct {
	Items []CartItemPayload `json:"items" validate:"dive"`
}

type CartItemPayload struct {
	ProductID   int             `json:"product_id" validate:"required,min=1"`
	Title       string          `json:"title" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"money"`
	Quantity    int             `json:"quantity" validate:"min=1,max=999"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"image,omitempty" validate:"omitempty,url"`
}

func (r LoadItemsRequest) toCartItems() []types.CartItem {
	items := make([]types.CartItem, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, types.CartItem{
			Product: types.Product{
				ID:          p.ProductID,
				Title:       validators.SanitizeString(p.Title, maxTitleLength),
				Price:       p.Price,
				Description: validators.SanitizeString(p.Description, 0),
				Category:    validators.SanitizeString(p.Category, 0),
				ImageURL:    validators.SanitizeString(p.ImageURL, 0),
			},
			Quantity: p.Quantity,
		})
	}
	return items
}
