package api

import "github.com/go-chi/chi/v5"

func (s *Server) setupRoutes() {
	s.router.Get("/api/v1/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/validate", s.handleValidate)
		r.Post("/logos", s.handleLogos)

		r.Get("/zones/{class}", s.handleZones)
		r.Get("/slots", s.handleSlots)

		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Delete("/plans/{id}", s.handleDeletePlan)
	})
}
