// Package server Demeter
//
// The Demeter is a service which owns the pet progression engine of the kids app:
// mood posts, daily rewards, egg drops, adoption and parental play-time limits.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/go-api"

	mm "github.com/Decentr-net/demeter/internal/middleware"
	"github.com/Decentr-net/demeter/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 1024

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		api.FileServerMiddleware("/docs", "static"),
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RequestIDMiddleware,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/posts", srv.createPost)
		r.Get("/posts", srv.listPosts)
		r.Post("/posts/{owner}/{uuid}/reactions", srv.setReaction)

		r.Get("/profiles/{owner}", srv.getProfile)
		r.Post("/profiles/{owner}/pet", srv.adoptPet)
		r.Delete("/profiles/{owner}/pet", srv.releasePet)
		r.Put("/profiles/{owner}/limits", srv.setUsageLimits)

		r.Get("/species", mm.Cached(10*time.Minute, srv.getSpecies))
	})
}
