package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"memories-backend/internal/models"
	"memories-backend/internal/repository"
	"memories-backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newAuthRouter() http.Handler {
	handler := NewAuthHandler(services.NewAuthService(newFakeUserRepo(), testSecret))

	router := http.NewServeMux()
	router.HandleFunc("POST /auth/register", handler.Register)
	router.HandleFunc("POST /auth/login", handler.Login)
	return router
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestRegister(t *testing.T) {
	router := newAuthRouter()

	t.Run("creates the user without leaking the password hash", func(t *testing.T) {
		w := postJSON(t, router, "/auth/register", map[string]string{
			"name": "Alice", "email": "alice@example.com", "password": "hunter22",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "alice@example.com")
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "hunter22")
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		w := postJSON(t, router, "/auth/register", map[string]string{
			"name": "Alice Again", "email": "alice@example.com", "password": "hunter23",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		w := postJSON(t, router, "/auth/register", map[string]string{
			"email": "bob@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	router := newAuthRouter()

	w := postJSON(t, router, "/auth/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("valid credentials return a token", func(t *testing.T) {
		w := postJSON(t, router, "/auth/login", map[string]string{
			"email": "alice@example.com", "password": "hunter22",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		w := postJSON(t, router, "/auth/login", map[string]string{
			"email": "alice@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is 401", func(t *testing.T) {
		w := postJSON(t, router, "/auth/login", map[string]string{
			"email": "nobody@example.com", "password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
