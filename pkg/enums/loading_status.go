package enums

import "fmt"

// LoadingStatus tracks the purchase request lifecycle of a cart controller.
type LoadingStatus string

const (
	LoadingStatusNotStarted LoadingStatus = "not_started"
	LoadingStatusLoading    LoadingStatus = "loading"
	LoadingStatusSuccess    LoadingStatus = "success"
	LoadingStatusError      LoadingStatus = "error"
)

var validLoadingStatuses = []LoadingStatus{
	LoadingStatusNotStarted,
	LoadingStatusLoading,
	LoadingStatusSuccess,
	LoadingStatusError,
}

// String implements fmt.Stringer.
func (s LoadingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LoadingStatus.
func (s LoadingStatus) IsValid() bool {
	for _, candidate := range validLoadingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition can leave the status.
func (s LoadingStatus) IsTerminal() bool {
	return s == LoadingStatusSuccess || s == LoadingStatusError
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s LoadingStatus) CanTransitionTo(next LoadingStatus) bool {
	switch s {
	case LoadingStatusNotStarted:
		return next == LoadingStatusLoading
	case LoadingStatusLoading:
		return next == LoadingStatusSuccess || next == LoadingStatusError
	default:
		return false
	}
}

// ParseLoadingStatus converts raw input into a LoadingStatus.
func ParseLoadingStatus(value string) (LoadingStatus, error) {
	for _, candidate := range validLoadingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid loading status %q", value)
}
