package suppliers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes вешает CRUD поставщиков на /api/v1/suppliers.
// Чтение открыто, мутации — за guard-ом requireUser.
func RegisterRoutes(api *mux.Router, h *Handler, requireUser mux.MiddlewareFunc) {
	sub := api.PathPrefix("/suppliers").Subrouter()
	sub.HandleFunc("", h.List).Methods(http.MethodGet)
	sub.HandleFunc("/{id:[a-fA-F0-9\\-]{36}}", h.Get).Methods(http.MethodGet)

	mut := api.PathPrefix("/suppliers").Subrouter()
	mut.Use(requireUser)
	mut.HandleFunc("", h.Create).Methods(http.MethodPost)
	mut.HandleFunc("/{id:[a-fA-F0-9\\-]{36}}", h.Update).Methods(http.MethodPatch)
	mut.HandleFunc("/{id:[a-fA-F0-9\\-]{36}}", h.Delete).Methods(http.MethodDelete)
}
