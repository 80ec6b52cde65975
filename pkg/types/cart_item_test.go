package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSumLineTotals(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: 1, Price: decimal.RequireFromString("10.00")}, Quantity: 2},
		{Product: Product{ID: 2, Price: decimal.RequireFromString("5.50")}, Quantity: 1},
	}
	if got := SumLineTotals(items); !got.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("unexpected total %s", got)
	}
	if got := SumLineTotals(nil); !got.IsZero() {
		t.Fatalf("empty cart should total zero, got %s", got)
	}
}

func TestLineTotalAvoidsFloatDrift(t *testing.T) {
	item := CartItem{Product: Product{Price: decimal.RequireFromString("0.10")}, Quantity: 3}
	if got := item.LineTotal(); !got.Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("expected exact 0.30, got %s", got)
	}
}
