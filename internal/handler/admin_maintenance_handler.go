package handler

import (
	"net/http"
	"strconv"

	"tablemate-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminMaintenanceHandler expone endpoints de mantenimiento de agregados.
type AdminMaintenanceHandler struct {
	svc *service.AdminMaintenanceService
}

func NewAdminMaintenanceHandler(svc *service.AdminMaintenanceService) *AdminMaintenanceHandler {
	return &AdminMaintenanceHandler{svc: svc}
}

// @Summary Resumen de drift de agregados
// @Description Compara (rating, numReviews) guardados contra las reviews reales de cada restaurante.
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Param limit query int false "máximo de restaurantes con drift a listar (default 50)"
// @Success 200 {object} models.AdminAggregateSummary
// @Failure 500 {string} string "error interno"
// @Router /admin/maintenance/aggregates/summary [get]
func (h *AdminMaintenanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	summary, err := h.svc.AggregatesSummary(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// @Summary Recontar agregados de un restaurante
// @Description Recalcula rating y numReviews desde las reviews reales y los escribe.
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Param id path string true "restId"
// @Success 200 {object} models.AdminRecountResult
// @Failure 404 {string} string "restaurante no encontrado"
// @Router /admin/maintenance/restaurants/{id}/recount [post]
func (h *AdminMaintenanceHandler) PostRecount(w http.ResponseWriter, r *http.Request) {
	restID := chi.URLParam(r, "id")

	res, err := h.svc.Recount(r.Context(), restID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if res == nil {
		http.Error(w, "restaurante no encontrado", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Helper para montar rutas en main.go
func MountAdminMaintenanceRoutes(r chi.Router, h *AdminMaintenanceHandler) {
	r.Route("/admin/maintenance", func(r chi.Router) {
		r.Get("/aggregates/summary", h.GetSummary)
		r.Post("/restaurants/{id}/recount", h.PostRecount)
	})
}
