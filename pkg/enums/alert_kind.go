package enums

import "fmt"

// AlertKind names which dialog the cart controller is presenting.
type AlertKind string

const (
	AlertKindConfirming AlertKind = "confirming"
	AlertKindSucceeded  AlertKind = "succeeded"
	AlertKindFailed     AlertKind = "failed"
)

var validAlertKinds = []AlertKind{
	AlertKindConfirming,
	AlertKindSucceeded,
	AlertKindFailed,
}

// String implements fmt.Stringer.
func (a AlertKind) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AlertKind.
func (a AlertKind) IsValid() bool {
	for _, candidate := range validAlertKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAlertKind converts raw input into an AlertKind.
func ParseAlertKind(value string) (AlertKind, error) {
	for _, candidate := range validAlertKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert kind %q", value)
}

// ButtonRole mirrors the dialog button roles a renderer understands.
type ButtonRole string

const (
	ButtonRoleDefault ButtonRole = "default"
	ButtonRoleCancel  ButtonRole = "cancel"
)
