package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/service"
	"github.com/practicum/shareit-api/internal/store"
)

// MockUserService is a mock implementation of service.UserService for testing
type MockUserService struct {
	RegisterFn func(ctx context.Context, name, email string) (*domain.User, error)
	GetByIDFn  func(ctx context.Context, userID int64) (*domain.User, error)
	GetAllFn   func(ctx context.Context) ([]*domain.User, error)
	UpdateFn   func(ctx context.Context, userID int64, params service.UpdateUserParams) (*domain.User, error)
	DeleteFn   func(ctx context.Context, userID int64) error
}

func (m *MockUserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email)
	}
	return nil, nil
}

func (m *MockUserService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *MockUserService) Update(ctx context.Context, userID int64, params service.UpdateUserParams) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockUserService) Delete(ctx context.Context, userID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}

// newUserRouter mounts a UserHandler on the routes the server registers.
func newUserRouter(svc service.UserService) http.Handler {
	h := NewUserHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/users", h.Create)
	r.Get("/users", h.GetAll)
	r.Get("/users/{userId}", h.GetByID)
	r.Patch("/users/{userId}", h.Update)
	r.Delete("/users/{userId}", h.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name:        "successful_registration",
			requestBody: CreateUserRequest{Name: "Alice", Email: "alice@example.com"},
			setupMock: func(ms *MockUserService) {
				ms.RegisterFn = func(ctx context.Context, name, email string) (*domain.User, error) {
					return &domain.User{ID: 1, Name: name, Email: email}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "blank_email_maps_to_400",
			requestBody: CreateUserRequest{Name: "Alice"},
			setupMock: func(ms *MockUserService) {
				ms.RegisterFn = func(ctx context.Context, name, email string) (*domain.User, error) {
					return nil, domain.ErrUserEmailEmpty
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Email must be provided",
		},
		{
			name:        "duplicate_email_maps_to_400",
			requestBody: CreateUserRequest{Name: "Bob", Email: "a@b.com"},
			setupMock: func(ms *MockUserService) {
				ms.RegisterFn = func(ctx context.Context, name, email string) (*domain.User, error) {
					return nil, domain.ErrUserEmailTaken
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Email is already in use",
		},
		{
			name:           "malformed_email_rejected_at_boundary",
			requestBody:    CreateUserRequest{Name: "Alice", Email: "not-an-email"},
			setupMock:      func(ms *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Validation error",
		},
		{
			name:           "missing_name_rejected_at_boundary",
			requestBody:    CreateUserRequest{Email: "alice@example.com"},
			setupMock:      func(ms *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Validation error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &MockUserService{}
			tc.setupMock(mock)
			router := newUserRouter(mock)

			rec := doJSON(t, router, http.MethodPost, "/users", tc.requestBody)
			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedErrMsg != "" {
				body := decodeErrorBody(t, rec)
				assert.Equal(t, tc.expectedErrMsg, body["message"])
				assert.NotEmpty(t, body["reason"])
			}
		})
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	mock := &MockUserService{
		GetByIDFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID == 1 {
				return &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	router := newUserRouter(mock)

	t.Run("found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/users/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var user UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("absent_user_maps_to_404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/users/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeErrorBody(t, rec)
		assert.Equal(t, "User not found", body["message"])
		assert.Equal(t, "resource not found", body["reason"])
	})

	t.Run("malformed_id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_GetAll(t *testing.T) {
	t.Run("empty_store_serializes_as_empty_list", func(t *testing.T) {
		mock := &MockUserService{
			GetAllFn: func(ctx context.Context) ([]*domain.User, error) {
				return nil, nil
			},
		}
		rec := doJSON(t, newUserRouter(mock), http.MethodGet, "/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestUserHandler_Update(t *testing.T) {
	mock := &MockUserService{
		UpdateFn: func(ctx context.Context, userID int64, params service.UpdateUserParams) (*domain.User, error) {
			if userID != 1 {
				return nil, store.ErrUserNotFound
			}
			user := &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
			if params.Name != nil {
				user.Name = *params.Name
			}
			return user, nil
		},
	}
	router := newUserRouter(mock)

	t.Run("partial_update", func(t *testing.T) {
		name := "Alicia"
		rec := doJSON(t, router, http.MethodPatch, "/users/1", UpdateUserRequest{Name: &name})
		require.Equal(t, http.StatusOK, rec.Code)

		var user UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Alicia", user.Name)
	})

	t.Run("absent_user_maps_to_404", func(t *testing.T) {
		name := "Alicia"
		rec := doJSON(t, router, http.MethodPatch, "/users/7", UpdateUserRequest{Name: &name})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := map[int64]bool{}
	mock := &MockUserService{
		DeleteFn: func(ctx context.Context, userID int64) error {
			if userID != 1 || deleted[userID] {
				return store.ErrUserNotFound
			}
			deleted[userID] = true
			return nil
		},
	}
	router := newUserRouter(mock)

	rec := doJSON(t, router, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Deleting twice surfaces the not-found from the service.
	rec = doJSON(t, router, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
