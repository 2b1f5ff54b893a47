package router

import (
	"fmt"
	"net/http"

	"github.com/citizenwallet/govdash/internal/admin"
	"github.com/citizenwallet/govdash/internal/auth"
	"github.com/citizenwallet/govdash/internal/chain"
	"github.com/citizenwallet/govdash/internal/governance"
	"github.com/citizenwallet/govdash/internal/version"
	"github.com/citizenwallet/govdash/internal/web"
	"github.com/citizenwallet/govdash/pkg/gov"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Networks interface {
	Lookup(name string) (gov.Network, error)
	All() []gov.Network
	Default() gov.Network
}

type Router struct {
	networks Networks
	src      gov.Source
	refreshq admin.Enqueuer
	adminKey string
}

func NewServer(networks Networks, src gov.Source, refreshq admin.Enqueuer, adminKey string) *Router {
	return &Router{
		networks,
		src,
		refreshq,
		adminKey,
	}
}

// Handler builds the api and web routes.
func (r *Router) Handler() http.Handler {
	cr := chi.NewRouter()

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
	})

	// configure middleware
	cr.Use(middleware.RequestID)
	cr.Use(middleware.Logger)
	cr.Use(middleware.Recoverer)
	cr.Use(sh.Handle)

	// configure custom middleware
	cr.Use(OptionsMiddleware)
	cr.Use(HealthMiddleware)
	cr.Use(RequestSizeLimitMiddleware(1 << 20))
	cr.Use(middleware.Compress(9))

	// instantiate handlers
	api := governance.NewService(r.networks, r.src)
	pages := web.NewService(r.networks, r.src)
	v := version.NewService()
	ch := chain.NewService(r.networks)

	// configure routes
	cr.Get("/version", v.Current)

	cr.Route("/api", func(cr chi.Router) {
		cr.Get("/networks", ch.Networks)
		cr.Get("/proposals", api.GetProposals)
		cr.Get("/proposal", api.GetProposal)
		cr.Get("/governance-parameters", api.GetGovernanceParameters)
		cr.Get("/voter", api.GetVoter)

		if r.adminKey != "" && r.refreshq != nil {
			a := auth.New(r.adminKey)
			adm := admin.NewService(r.networks, r.refreshq)

			cr.With(a.AuthMiddleware).Post("/admin/refresh", adm.Refresh)
		}
	})

	cr.Get("/", pages.Root)
	cr.Get("/about", pages.About)

	cr.Route("/{network}", func(cr chi.Router) {
		cr.Get("/", pages.Network)
		cr.Get("/proposal/{id}", pages.Proposal)
		cr.Get("/voter/{id}", pages.Voter)
		cr.Get("/governance-parameters", pages.Parameters)
	})

	return cr
}

// implement the Server interface
func (r *Router) Start(port int) error {
	// start the server
	return http.ListenAndServe(fmt.Sprintf(":%v", port), r.Handler())
}
