package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"uwazi/internal/logs"
	"uwazi/internal/middleware"
	"uwazi/internal/models"
)

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

type Handler struct {
	svc *Service
}

// POST /api/v1/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	req.Normalize()

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", ErrInvalidCredentials.Error(), nil)
			return
		}
		logs.Logger.Errorf("login: %v reqid=%s", err, middleware.GetRequestID(r))
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", "login failed", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(u),
	})
}

// POST /api/v1/registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}

	u, err := h.svc.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			models.WriteProblem(w, http.StatusBadRequest, "Bad Request", ErrDuplicateEmail.Error(), nil)
			return
		}
		// причина остаётся в логах, наружу — generic
		logs.Logger.Errorf("registration: %v reqid=%s", err, middleware.GetRequestID(r))
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", "failed to create user", nil)
		return
	}
	models.WriteJSON(w, http.StatusCreated, NewUserResponse(u))
}

// GET /api/v1/me (за guard-ом RequireUser)
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r)
	if u == nil {
		models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "user not found", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, NewUserResponse(u))
}
