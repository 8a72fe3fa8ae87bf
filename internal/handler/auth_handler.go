package handler

import (
	"encoding/json"
	"net/http"

	"tablemate-backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Register
// @Description Crea una cuenta con login (permisos User)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "credenciales"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email y password son obligatorios", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"userId":   u.UserID,
		"email":    u.Email,
		"permisos": u.Permisos,
	})
}

// @Summary Login
// @Description Devuelve un JWT con sub y permisos
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    token,
		"userId":   u.UserID,
		"permisos": u.Permisos,
	})
}
