package accounts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwazi/internal/auth"
	"uwazi/internal/logs"
	"uwazi/internal/middleware"
)

func newTestRouter() http.Handler {
	logs.Init(logs.Options{Level: "error"})
	codec := auth.NewCodec("0123456789abcdef0123456789abcdef", 30*time.Minute)
	store := NewMemoryStore()
	svc := NewService(store, codec)
	authn := auth.NewAuthenticator(codec, store)

	r := mux.NewRouter().StrictSlash(true)
	api := r.PathPrefix("/api/v1").Subrouter()
	RegisterRoutes(api, NewHandler(svc), middleware.RequireUser(authn))
	return r
}

const registrationBody = `{
	"first_name": "Jane",
	"last_name": "Doe",
	"email": "a@b.com",
	"phone_number": "+254712345678",
	"role": "investigator",
	"password": "Sup3r!Secret"
}`

func TestRegistrationEndpoint(t *testing.T) {
	handler := newTestRouter()

	apitest.New().
		Handler(handler).
		Post("/api/v1/registration").
		Body(registrationBody).
		Expect(t).
		Status(http.StatusCreated).
		End()

	// повторная регистрация того же email — 400
	apitest.New().
		Handler(handler).
		Post("/api/v1/registration").
		Body(registrationBody).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestRegistrationValidation(t *testing.T) {
	handler := newTestRouter()

	apitest.New().
		Handler(handler).
		Post("/api/v1/registration").
		Body(`{"first_name":"J","last_name":"D","email":"x@y.com","phone_number":"1","role":"investigator","password":"weak"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLoginRejections(t *testing.T) {
	handler := newTestRouter()

	apitest.New().
		Handler(handler).
		Post("/api/v1/registration").
		Body(registrationBody).
		Expect(t).
		Status(http.StatusCreated).
		End()

	// неверный пароль и неизвестный email дают одинаковый 401
	wrongPass := doJSON(t, handler, http.MethodPost, "/api/v1/login",
		`{"email":"a@b.com","password":"Wrong!Pass1"}`, "")
	noUser := doJSON(t, handler, http.MethodPost, "/api/v1/login",
		`{"email":"ghost@b.com","password":"Sup3r!Secret"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.Equal(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestMeRequiresToken(t *testing.T) {
	handler := newTestRouter()

	apitest.New().
		Handler(handler).
		Get("/api/v1/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/v1/me").
		Header("Authorization", "Bearer not-a-token").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

// Сквозной сценарий: регистрация → логин → /me тем же токеном.
func TestRegisterLoginMe(t *testing.T) {
	handler := newTestRouter()

	// 1) регистрация: санитизированная проекция, без хеша пароля
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/registration", registrationBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "Sup3r!Secret")

	var created UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "a@b.com", created.Email)

	// 2) логин теми же кредами — выдан токен
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/login",
		`{"email":"a@b.com","password":"Sup3r!Secret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tr TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	assert.Equal(t, "bearer", tr.TokenType)
	require.NotEmpty(t, tr.AccessToken)
	assert.Equal(t, created.ID, tr.User.ID)

	// 3) /me по токену — тот же аккаунт
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/me", "", tr.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var me UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, created.ID, me.ID)
}

func doJSON(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
