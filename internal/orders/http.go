package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/types"
)

const (
	defaultHTTPTimeout          = 10 * time.Second
	responseBodyReadLimit int64 = 1024
)

var errEndpointRequired = errors.New("order endpoint is required")

// HTTPSubmitter posts orders as JSON to a remote endpoint.
type HTTPSubmitter struct {
	httpClient *http.Client
	endpoint   string
}

// HTTPOption configures optional submitter behavior.
type HTTPOption func(*HTTPSubmitter)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSubmitter) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPSubmitter) {
		if timeout > 0 {
			s.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

func NewHTTPSubmitter(endpoint string, opts ...HTTPOption) (*HTTPSubmitter, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, errEndpointRequired
	}

	submitter := &HTTPSubmitter{
		endpoint:   trimmed,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(submitter)
		}
	}
	return submitter, nil
}

type orderRequest struct {
	Items []orderLine `json:"items"`
	Total string      `json:"total"`
}

type orderLine struct {
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

func newOrderRequest(items []types.CartItem) orderRequest {
	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, orderLine{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Price:     item.Product.Price.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return orderRequest{Items: lines, Total: types.SumLineTotals(items).StringFixed(2)}
}

// SubmitOrder posts items and returns the response body as the confirmation message.
// An empty 2xx body confirms with "OK".
func (s *HTTPSubmitter) SubmitOrder(ctx context.Context, items []types.CartItem) (string, error) {
	if s == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "order endpoint not configured")
	}
	if err := validateItems(items); err != nil {
		return "", err
	}

	payload, err := json.Marshal(newOrderRequest(items))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute order request")
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	text := strings.TrimSpace(string(body))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, text), "order request failed")
	}
	if text == "" {
		return defaultStaticMessage, nil
	}
	return text, nil
}
