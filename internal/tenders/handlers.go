package tenders

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

// Store — контракт персистентности для тендеров.
// Отсутствие записи на чтении — (nil, nil).
type Store interface {
	Create(ctx context.Context, t *models.Tender) error
	FindByNumber(ctx context.Context, number string) (*models.Tender, error)
	List(ctx context.Context, f models.TenderFilter) ([]models.Tender, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Tender, error)
	Update(ctx context.Context, t *models.Tender) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewHandler(store Store) *Handler { return &Handler{store: store} }

type Handler struct {
	store Store
}

// POST /api/v1/tenders
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

	// дубликат по номеру тендера
	existing, err := h.store.FindByNumber(r.Context(), req.TenderNumber)
	if err != nil {
		h.storeError(w, r, "create tender", err)
		return
	}
	if existing != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request",
			"a tender with this reference number already exists", nil)
		return
	}

	var createdBy *uuid.UUID
	if u := middleware.UserFrom(r); u != nil {
		createdBy = &u.ID
	}
	t := req.toModel(createdBy)
	if err := h.store.Create(r.Context(), t); err != nil {
		h.storeError(w, r, "create tender", err)
		return
	}
	models.WriteJSON(w, http.StatusCreated, t)
}

// GET /api/v1/tenders
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	items, err := h.store.List(r.Context(), f)
	if err != nil {
		h.storeError(w, r, "list tenders", err)
		return
	}
	if items == nil {
		items = []models.Tender{}
	}
	models.WriteJSON(w, http.StatusOK, items)
}

// GET /api/v1/tenders/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid tender id", nil)
		return
	}
	t, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "get tender", err)
		return
	}
	if t == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "tender not found", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

// PATCH /api/v1/tenders/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid tender id", nil)
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

	t, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "update tender", err)
		return
	}
	if t == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "tender not found", nil)
		return
	}
	req.apply(t)
	if err := h.store.Update(r.Context(), t); err != nil {
		h.storeError(w, r, "update tender", err)
		return
	}
	models.WriteJSON(w, http.StatusOK, t)
}

// DELETE /api/v1/tenders/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid tender id", nil)
		return
	}
	t, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "delete tender", err)
		return
	}
	if t == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "tender not found", nil)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "delete tender", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logs.Logger.Errorf("%s: %v reqid=%s", op, err, middleware.GetRequestID(r))
	models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error",
		"failed to "+op, nil)
}

func parseFilter(r *http.Request) (models.TenderFilter, error) {
	q := r.URL.Query()
	f := models.TenderFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		County:   q.Get("county"),
		Category: q.Get("category"),
		Limit:    50,
	}
	if v := q.Get("status"); v != "" {
		f.Status = models.TenderStatus(v)
	}
	if v := q.Get("risk_level"); v != "" {
		f.RiskLevel = models.RiskLevel(v)
	}
	if v := q.Get("is_flagged"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.IsFlagged = &b
	}
	var err error
	if f.Skip, f.Limit, err = parsePagination(q.Get("skip"), q.Get("limit")); err != nil {
		return f, err
	}
	return f, nil
}

// skip>=0, 1<=limit<=200 (дефолт 50) — как в исходном API
func parsePagination(skipRaw, limitRaw string) (skip, limit int, err error) {
	limit = 50
	if skipRaw != "" {
		if skip, err = strconv.Atoi(skipRaw); err != nil || skip < 0 {
			return 0, 0, fmt.Errorf("invalid query parameter: skip")
		}
	}
	if limitRaw != "" {
		if limit, err = strconv.Atoi(limitRaw); err != nil || limit < 1 || limit > 200 {
			return 0, 0, fmt.Errorf("invalid query parameter: limit")
		}
	}
	return skip, limit, nil
}
