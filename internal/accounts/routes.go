package accounts

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes вешает маршруты аутентификации на /api/v1.
// requireUser — guard для эндпойнтов, требующих bearer-токен.
func RegisterRoutes(api *mux.Router, h *Handler, requireUser mux.MiddlewareFunc) {
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/registration", h.Register).Methods(http.MethodPost)

	me := api.PathPrefix("/me").Subrouter()
	me.Use(requireUser)
	me.HandleFunc("", h.Me).Methods(http.MethodGet)
}
