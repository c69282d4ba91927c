// Package server Quill
//
// The Quill is a read api of the publishing platform which keeps its entities (works, profiles, topics, follows,
// likes and responses) on an append-only ledger.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/quill/internal/cache"
	mm "github.com/Decentr-net/quill/internal/middleware"
	"github.com/Decentr-net/quill/internal/service"
)

const maxBodySize = 1024

const topicsTTL = time.Minute

type server struct {
	s service.Reader
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Reader, c cache.Storage, r chi.Router, timeout time.Duration) {
	r.Use(
		mm.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/works", srv.listWorks)
		r.Get("/works/top", srv.listWorksTop)
		r.Get("/works/{id}", srv.getWork)
		r.Get("/works/{id}/likes", srv.getWorkLikes)
		r.Get("/works/{id}/likers", srv.listWorkLikers)
		r.Get("/works/{id}/topics", srv.getWorkTopics)
		r.Get("/works/{id}/responses", srv.listWorkResponses)

		r.Get("/authors/{id}/works", srv.listAuthorWorks)

		r.Get("/profiles/{id}", srv.getProfile)
		r.Get("/profiles/{id}/avatar", srv.getAvatar)
		r.Get("/profiles/{id}/followers", srv.listFollowers)
		r.Get("/profiles/{id}/followed", srv.listFollowed)
		r.Get("/profiles/{id}/feed", srv.listFeed)
		r.Get("/profiles/{id}/responses", srv.listProfileResponses)

		r.Get("/owners/{address}/profile", srv.getProfileByOwner)

		r.Get("/topics", mm.Cached(topicsTTL, c, srv.listTopics))
		r.Get("/topics/{id}", srv.getTopic)
		r.Get("/topics/{id}/works", srv.listTopicWorks)
	})
}
