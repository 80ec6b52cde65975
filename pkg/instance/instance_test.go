package instance

import "testing"

func TestGetIDPrefersExplicitID(t *testing.T) {
	t.Setenv("CARTSTORE_INSTANCE_ID", "cart-1")
	t.Setenv("DYNO", "web.1")
	if got := GetID(); got != "cart-1" {
		t.Fatalf("expected cart-1, got %q", got)
	}
}

func TestGetIDFallsBack(t *testing.T) {
	t.Setenv("CARTSTORE_INSTANCE_ID", "")
	t.Setenv("DYNO", "")
	t.Setenv("HOSTNAME", "")
	if got := GetID(); got != "local" {
		t.Fatalf("expected local, got %q", got)
	}
}
