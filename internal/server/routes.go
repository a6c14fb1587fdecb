package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tarkov_market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/questline", func(r chi.Router) {
				r.Get("/", handler(s.getV1Questline))
				r.Get("/summary", handler(s.getV1QuestlineSummary))
			})
			r.Get("/quests", handler(s.getV1Quests))
			r.Route("/items", func(r chi.Router) {
				r.Get("/search", handler(s.getV1ItemsSearch))
				r.Post("/search", handler(s.postV1ItemsSearch))
				r.Get("/{id}", handler(s.getV1Item))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
