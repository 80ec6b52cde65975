package orders

import (
	"context"
	"strings"

	"github.com/angelmondragon/cartstore/pkg/types"
)

const defaultStaticMessage = "OK"

// StaticSubmitter accepts every valid order and answers with a fixed message.
type StaticSubmitter struct {
	Message string
}

func NewStaticSubmitter(message string) *StaticSubmitter {
	if strings.TrimSpace(message) == "" {
		message = defaultStaticMessage
	}
	return &StaticSubmitter{Message: message}
}

func (s *StaticSubmitter) SubmitOrder(ctx context.Context, items []types.CartItem) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateItems(items); err != nil {
		return "", err
	}
	if s == nil || s.Message == "" {
		return defaultStaticMessage, nil
	}
	return s.Message, nil
}
