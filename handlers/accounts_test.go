package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-server/db"
	"campus-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHandler(t *testing.T) {
	store := newStubStore()
	a := NewApiHandler(store, nil)

	body := `{"email":"alice@rjit.com","name":"Alice","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.RegisterHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp shared.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Id)
	assert.Equal(t, "alice@rjit.com", resp.Email)
	assert.Equal(t, "student", resp.Role, "missing role defaults to student")

	created := store.usersByEmail["alice@rjit.com"]
	require.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.PasswordHash, "plaintext password must never be persisted")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	store := newStubStore()
	store.createUserErr = db.ErrDuplicateEmail
	a := NewApiHandler(store, nil)

	body := `{"email":"alice@rjit.com","name":"Alice","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.RegisterHandler(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiErr shared.ApiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, shared.ApiErrorTypeConflict, apiErr.Type)
}

func TestRegisterHandlerTeacherProfile(t *testing.T) {
	store := newStubStore()
	a := NewApiHandler(store, nil)

	body := `{"email":"prof@rjit.com","name":"Prof","password":"pw","role":"teacher","teaching_branches":["CSE","ECE"],"teaching_semesters":"4,6"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.RegisterHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	created := store.usersByEmail["prof@rjit.com"]
	require.NotNil(t, created)
	assert.Equal(t, "teacher", created.Role)
	assert.Equal(t, []string{"CSE", "ECE"}, []string(created.TeachingBranches))
	assert.Equal(t, []string{"4", "6"}, []string(created.TeachingSemesters), "comma form accepted for list fields")
}

func TestSignInHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newStubStore()
	store.addUser(&db.User{
		Id:           "user-1",
		Email:        "alice@rjit.com",
		Name:         "Alice",
		Role:         "student",
		Branch:       strPtr("CSE"),
		Semester:     strPtr("4"),
		PasswordHash: string(hash),
	})
	a := NewApiHandler(store, nil)

	body := `{"email":"alice@rjit.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.SignInHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp shared.SignInResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Login success", resp.Message)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, "alice@rjit.com", resp.User.Email)

	assert.NotContains(t, rr.Body.String(), "password", "response must never carry the password hash")
	assert.NotContains(t, rr.Body.String(), string(hash))
}

func TestSignInHandlerWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := newStubStore()
	store.addUser(&db.User{Id: "user-1", Email: "alice@rjit.com", PasswordHash: string(hash)})
	a := NewApiHandler(store, nil)

	// no lockout: the result is the same however many times we try
	for i := 0; i < 3; i++ {
		body := `{"email":"alice@rjit.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()

		a.SignInHandler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}
}

func TestSignInHandlerUnknownEmail(t *testing.T) {
	a := NewApiHandler(newStubStore(), nil)

	body := `{"email":"nobody@rjit.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.SignInHandler(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var apiErr shared.ApiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, shared.ApiErrorTypeAuthentication, apiErr.Type)
}
