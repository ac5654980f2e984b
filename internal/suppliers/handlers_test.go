package suppliers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwazi/internal/auth"
	"uwazi/internal/logs"
	"uwazi/internal/middleware"
	"uwazi/internal/models"
)

type staticFinder struct{ user *models.User }

func (f staticFinder) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	logs.Init(logs.Options{Level: "error"})

	codec := auth.NewCodec("0123456789abcdef0123456789abcdef", time.Minute)
	user := &models.User{ID: uuid.New(), Email: "admin@gov.ke", Role: models.RoleAdmin}
	token, err := codec.Encode(user.ID.String(), 0)
	require.NoError(t, err)

	r := mux.NewRouter().StrictSlash(true)
	api := r.PathPrefix("/api/v1").Subrouter()
	requireUser := middleware.RequireUser(auth.NewAuthenticator(codec, staticFinder{user}))
	RegisterRoutes(api, NewHandler(NewMemoryStore()), requireUser)
	return r, token
}

const supplierBody = `{
	"registration_number": "PVT-123456",
	"name": "Acme Supplies Ltd",
	"tax_pin": "A012345678Z",
	"contact_email": "info@acme.co.ke"
}`

func TestCreateSupplierRequiresAuth(t *testing.T) {
	handler, _ := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Post("/api/v1/suppliers").
		Body(supplierBody).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestCreateSupplierDuplicate(t *testing.T) {
	handler, token := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Post("/api/v1/suppliers").
		Header("Authorization", "Bearer "+token).
		Body(supplierBody).
		Expect(t).
		Status(http.StatusCreated).
		End()

	apitest.New().
		Handler(handler).
		Post("/api/v1/suppliers").
		Header("Authorization", "Bearer "+token).
		Body(supplierBody).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestSupplierCRUD(t *testing.T) {
	handler, token := newTestRouter(t)

	rec := do(t, handler, http.MethodPost, "/api/v1/suppliers", supplierBody, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.IsVerified)

	// patch: верификация и blacklist-поля
	rec = do(t, handler, http.MethodPatch, "/api/v1/suppliers/"+created.ID.String(),
		`{"is_verified":true,"is_blacklisted":true,"blacklist_reason":"ghost company suspicion"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.IsVerified)
	assert.True(t, updated.IsBlacklisted)
	assert.Equal(t, created.Name, updated.Name)

	rec = do(t, handler, http.MethodDelete, "/api/v1/suppliers/"+created.ID.String(), "", token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, handler, http.MethodGet, "/api/v1/suppliers/"+created.ID.String(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSuppliersFilters(t *testing.T) {
	handler, token := newTestRouter(t)

	seed := []string{
		`{"registration_number":"S-1","name":"Alpha Traders","is_blacklisted":true,"risk_level":"HIGH"}`,
		`{"registration_number":"S-2","name":"Beta Logistics","is_verified":true,"tax_compliant":true}`,
		`{"registration_number":"S-3","name":"Alpha Medical","is_ghost_likely":true}`,
	}
	for _, b := range seed {
		rec := do(t, handler, http.MethodPost, "/api/v1/suppliers", b, token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?search=alpha", 2},
		{"?is_blacklisted=true", 1},
		{"?is_verified=true", 1},
		{"?is_ghost_likely=true", 1},
		{"?tax_compliant=false", 2},
		{"?risk_level=HIGH", 1},
		{"?search=alpha&is_ghost_likely=true", 1},
	}
	for _, tc := range cases {
		rec := do(t, handler, http.MethodGet, "/api/v1/suppliers"+tc.query, "", "")
		require.Equal(t, http.StatusOK, rec.Code, tc.query)
		var got []models.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, tc.want, tc.query)
	}
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
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
