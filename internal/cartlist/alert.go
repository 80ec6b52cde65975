package cartlist

import (
	"fmt"

	"github.com/angelmondragon/cartstore/pkg/enums"
	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
)

// Alert describes a dialog for the renderer. Only one can be presented at a time.
type Alert struct {
	Kind    enums.AlertKind `json:"kind"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Buttons []AlertButton   `json:"buttons"`
}

// AlertButton is one dialog button and the action it sends back when tapped.
type AlertButton struct {
	Label  string           `json:"label"`
	Role   enums.ButtonRole `json:"role"`
	Action Action           `json:"-"`
}

func confirmationAlert(total string) *Alert {
	return &Alert{
		Kind:    enums.AlertKindConfirming,
		Title:   "Confirm your purchase",
		Message: fmt.Sprintf("Do you want to proceed with your purchase of %s?", total),
		Buttons: []AlertButton{
			{Label: "Pay " + total, Role: enums.ButtonRoleDefault, Action: ConfirmationAccepted{}},
			{Label: "Cancel", Role: enums.ButtonRoleCancel, Action: ConfirmationCancelled{}},
		},
	}
}

func successAlert() *Alert {
	return &Alert{
		Kind:    enums.AlertKindSucceeded,
		Title:   "Thank you!",
		Message: "Your order is in process.",
		Buttons: []AlertButton{
			{Label: "Done", Role: enums.ButtonRoleDefault, Action: SuccessDismissed{}},
		},
	}
}

// errorAlert never carries the failure cause.
func errorAlert() *Alert {
	return &Alert{
		Kind:    enums.AlertKindFailed,
		Title:   "Oops!",
		Message: pkgerrors.MetadataFor(pkgerrors.CodeOrderSubmission).PublicMessage,
		Buttons: []AlertButton{
			{Label: "Done", Role: enums.ButtonRoleDefault, Action: ErrorDismissed{}},
		},
	}
}
