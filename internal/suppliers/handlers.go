package suppliers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"uwazi/internal/logs"
	"uwazi/internal/middleware"
	"uwazi/internal/models"
)

// Store — контракт персистентности для поставщиков.
// Отсутствие записи на чтении — (nil, nil).
type Store interface {
	Create(ctx context.Context, s *models.Supplier) error
	FindByRegistrationNumber(ctx context.Context, number string) (*models.Supplier, error)
	List(ctx context.Context, f models.SupplierFilter) ([]models.Supplier, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewHandler(store Store) *Handler { return &Handler{store: store} }

type Handler struct {
	store Store
}

// POST /api/v1/suppliers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}

	existing, err := h.store.FindByRegistrationNumber(r.Context(), req.RegistrationNumber)
	if err != nil {
		h.storeError(w, r, "create supplier", err)
		return
	}
	if existing != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request",
			"a supplier with this registration number already exists", nil)
		return
	}

	s := req.toModel()
	if err := h.store.Create(r.Context(), s); err != nil {
		h.storeError(w, r, "create supplier", err)
		return
	}
	models.WriteJSON(w, http.StatusCreated, s)
}

// GET /api/v1/suppliers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	items, err := h.store.List(r.Context(), f)
	if err != nil {
		h.storeError(w, r, "list suppliers", err)
		return
	}
	if items == nil {
		items = []models.Supplier{}
	}
	models.WriteJSON(w, http.StatusOK, items)
}

// GET /api/v1/suppliers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid supplier id", nil)
		return
	}
	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "get supplier", err)
		return
	}
	if s == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "supplier not found", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, s)
}

// PATCH /api/v1/suppliers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid supplier id", nil)
		return
	}
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}

	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "update supplier", err)
		return
	}
	if s == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "supplier not found", nil)
		return
	}
	req.apply(s)
	if err := h.store.Update(r.Context(), s); err != nil {
		h.storeError(w, r, "update supplier", err)
		return
	}
	models.WriteJSON(w, http.StatusOK, s)
}

// DELETE /api/v1/suppliers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid supplier id", nil)
		return
	}
	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete supplier", err)
		return
	}
	if s == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "supplier not found", nil)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "delete supplier", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logs.Logger.Errorf("%s: %v reqid=%s", op, err, middleware.GetRequestID(r))
	models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error",
		"failed to "+op, nil)
}

func parseFilter(r *http.Request) (models.SupplierFilter, error) {
	q := r.URL.Query()
	f := models.SupplierFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Limit:  50,
	}
	if v := q.Get("risk_level"); v != "" {
		f.RiskLevel = models.RiskLevel(v)
	}
	for name, dst := range map[string]**bool{
		"is_verified":     &f.IsVerified,
		"is_blacklisted":  &f.IsBlacklisted,
		"is_ghost_likely": &f.IsGhostLikely,
		"tax_compliant":   &f.TaxCompliant,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return f, fmt.Errorf("invalid query parameter: %s", name)
			}
			*dst = &b
		}
	}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid query parameter: skip")
		}
		f.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			return f, fmt.Errorf("invalid query parameter: limit")
		}
		f.Limit = n
	}
	return f, nil
}
