package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/resume-system/backend/internal/model"
	"github.com/resume-system/backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type memUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func (m *memUserStore) CreateUser(ctx context.Context, email, passwordHash string, name *string) (*model.User, error) {
	user := &model.User{ID: m.nextID, Email: email, PasswordHash: passwordHash, Name: name, CreatedAt: time.Now()}
	m.nextID++
	m.users[email] = user
	return user, nil
}

func (m *memUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if user, ok := m.users[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserStore) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, user := range m.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newAuthAPI(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := service.NewTokenService("test-secret")
	if err != nil {
		t.Fatalf("token service init failed: %v", err)
	}
	store := &memUserStore{users: map[string]*model.User{}, nextID: 1}
	svc := service.NewAuthService(store, service.NewPasswordHasher(bcrypt.MinCost), tokens)
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/profile", AuthRequired(tokens), h.Profile)
	return r, tokens
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	r, tokens := newAuthAPI(t)

	// Register.
	w := postJSON(r, "/api/auth/register", `{"email":"a@x.com","password":"pw1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var registered model.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatalf("bad register body: %v", err)
	}
	if registered.Token == "" || registered.User == nil {
		t.Fatalf("incomplete register response: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("register response leaks password material: %s", w.Body.String())
	}

	// Duplicate register.
	if w := postJSON(r, "/api/auth/register", `{"email":"a@x.com","password":"pw1"}`); w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", w.Code)
	}

	// Wrong password.
	if w := postJSON(r, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	// Correct login yields a verifiable token.
	w = postJSON(r, "/api/auth/login", `{"email":"a@x.com","password":"pw1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var loggedIn model.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("bad login body: %v", err)
	}
	identity, err := tokens.Verify(loggedIn.Token)
	if err != nil {
		t.Fatalf("login token does not verify: %v", err)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("token email mismatch: %q", identity.Email)
	}

	// Profile with the token.
	wp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.Token)
	r.ServeHTTP(wp, req)
	if wp.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d: %s", wp.Code, wp.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newAuthAPI(t)

	cases := []string{
		`{}`,
		`{"email":"a@x.com"}`,
		`{"password":"pw1"}`,
		`{"email":"not-an-email","password":"pw1"}`,
	}
	for _, body := range cases {
		if w := postJSON(r, "/api/auth/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestProfileWithoutToken(t *testing.T) {
	r, _ := newAuthAPI(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
