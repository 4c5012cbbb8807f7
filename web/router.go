package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/Matthewduffy23/Club-View/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", clubViewHandler(ctrl, render))

	r.Route("/charts", func(r chi.Router) {
		// The scatter charts rank against the whole league, so give them a
		// little more room than regular pages.
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/team", teamChartHandler(ctrl, render))
		r.Get("/players", playerChartHandler(ctrl, render))
		r.Get("/squad-profile", squadProfileChartHandler(ctrl, render))
		r.Get("/archetypes", archetypeChartHandler(ctrl, render))
	})

	return r
}
