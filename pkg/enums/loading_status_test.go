package enums

import "testing"

func TestLoadingStatusTransitions(t *testing.T) {
	allowed := map[LoadingStatus][]LoadingStatus{
		LoadingStatusNotStarted: {LoadingStatusLoading},
		LoadingStatusLoading:    {LoadingStatusSuccess, LoadingStatusError},
	}
	for _, from := range validLoadingStatuses {
		for _, to := range validLoadingStatuses {
			want := false
			for _, candidate := range allowed[from] {
				if candidate == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s -> %s: expected %v got %v", from, to, want, got)
			}
		}
	}
}

func TestLoadingStatusTerminal(t *testing.T) {
	if !LoadingStatusSuccess.IsTerminal() || !LoadingStatusError.IsTerminal() {
		t.Fatal("success and error are terminal")
	}
	if LoadingStatusNotStarted.IsTerminal() || LoadingStatusLoading.IsTerminal() {
		t.Fatal("not_started and loading are not terminal")
	}
}

func TestParseLoadingStatus(t *testing.T) {
	got, err := ParseLoadingStatus("loading")
	if err != nil || got != LoadingStatusLoading {
		t.Fatalf("unexpected parse result %q %v", got, err)
	}
	if _, err := ParseLoadingStatus("pending"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if LoadingStatus("pending").IsValid() {
		t.Fatal("unknown status should be invalid")
	}
}

func TestParseAlertKind(t *testing.T) {
	for _, kind := range validAlertKinds {
		got, err := ParseAlertKind(kind.String())
		if err != nil || got != kind {
			t.Fatalf("round trip failed for %s", kind)
		}
	}
	if _, err := ParseAlertKind("none"); err == nil {
		t.Fatal("none is represented by a nil alert, not a kind")
	}
}
