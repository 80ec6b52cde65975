package env

import "testing"

func TestGetTrimsAndFallsBack(t *testing.T) {
	t.Setenv("CARTSTORE_TEST_VALUE", "  console ")
	if got := Get("CARTSTORE_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	t.Setenv("CARTSTORE_TEST_VALUE", "   ")
	if got := Get("CARTSTORE_TEST_VALUE", "json"); got != "json" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFirst(t *testing.T) {
	t.Setenv("CARTSTORE_TEST_A", "")
	t.Setenv("CARTSTORE_TEST_B", "b")
	if got := First("z", "CARTSTORE_TEST_A", "CARTSTORE_TEST_B"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := First("z"); got != "z" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
