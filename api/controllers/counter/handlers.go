package counter

import (
	"net/http"

	"github.com/angelmondragon/cartstore/api/responses"
	"github.com/angelmondragon/cartstore/internal/addtocart"
	pkgerrors "github.com/angelmondragon/cartstore/pkg/errors"
	"github.com/angelmondragon/cartstore/pkg/logger"
)

type Controller interface {
	Send(addtocart.Action)
	State() addtocart.State
}

func CounterFetch(counter Controller, logg *logger.Logger) http.HandlerFunc {
	return CounterSend(counter, nil, logg)
}

// CounterSend applies action, when given, and renders the counter.
func CounterSend(counter Controller, action addtocart.Action, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if counter == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "counter unavailable"))
			return
		}
		if action != nil {
			counter.Send(action)
		}
		responses.WriteSuccess(w, counter.State())
	}
}
