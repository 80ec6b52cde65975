package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/cartstore/api/controllers"
	cartcontrollers "github.com/angelmondragon/cartstore/api/controllers/cart"
	countercontrollers "github.com/angelmondragon/cartstore/api/controllers/counter"
	"github.com/angelmondragon/cartstore/api/middleware"
	"github.com/angelmondragon/cartstore/internal/addtocart"
	"github.com/angelmondragon/cartstore/internal/cartlist"
	"github.com/angelmondragon/cartstore/pkg/config"
	"github.com/angelmondragon/cartstore/pkg/logger"
)

// Deps are the runtime collaborators the router exposes.
type Deps struct {
	Cart     cartcontrollers.Controller
	Counter  countercontrollers.Controller
	Gatherer prometheus.Gatherer
	Ready    map[string]controllers.Pinger
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Ready))
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(deps.Cart, logg))
			r.Put("/items", cartcontrollers.CartLoadItems(deps.Cart, logg))
			r.Delete("/items/{itemId}", cartcontrollers.CartRemoveItem(deps.Cart, logg))
			r.Post("/pay", cartcontrollers.CartPay(deps.Cart, logg))
			r.Post("/confirm", cartcontrollers.CartConfirm(deps.Cart, logg))
			r.Post("/cancel", cartcontrollers.CartSend(deps.Cart, cartlist.ConfirmationCancelled{}, logg))
			r.Post("/close", cartcontrollers.CartSend(deps.Cart, cartlist.CloseTapped{}, logg))
			r.Post("/alerts/success/dismiss", cartcontrollers.CartSend(deps.Cart, cartlist.SuccessDismissed{}, logg))
			r.Post("/alerts/error/dismiss", cartcontrollers.CartSend(deps.Cart, cartlist.ErrorDismissed{}, logg))
		})

		r.Route("/counter", func(r chi.Router) {
			r.Get("/", countercontrollers.CounterFetch(deps.Counter, logg))
			r.Post("/increment", countercontrollers.CounterSend(deps.Counter, addtocart.Increment{}, logg))
			r.Post("/decrement", countercontrollers.CounterSend(deps.Counter, addtocart.Decrement{}, logg))
		})
	})

	return r
}
