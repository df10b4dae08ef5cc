package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"campus-server/db"
	"campus-server/shared"
)

func writeApiError(w http.ResponseWriter, apiErr shared.ApiError) {
	bytes, err := json.Marshal(apiErr)
	if err != nil {
		log.Printf("Error marshalling api error: %v\n", err)
		http.Error(w, apiErr.Msg, apiErr.Status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	w.Write(bytes)
}

func writeJson(w http.ResponseWriter, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshalling response: %v\n", err)
		http.Error(w, "Error marshalling response: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(bytes)
}

// authenticateOptional resolves the acting user from a Bearer token when one
// is presented. Requests without an Authorization header pass through with a
// nil user and fall back to the legacy author_id fields. A malformed or
// invalid token is rejected outright.
func (a *ApiHandler) authenticateOptional(w http.ResponseWriter, r *http.Request) (*db.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, true
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Println("invalid auth header")
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthentication,
			Status: http.StatusUnauthorized,
			Msg:    "Invalid auth header",
		})
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	authToken, err := a.Store.ValidateAuthToken(r.Context(), token)
	if err != nil {
		log.Printf("Error validating auth token: %v\n", err)
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthentication,
			Status: http.StatusUnauthorized,
			Msg:    "Invalid token",
		})
		return nil, false
	}

	user, err := a.Store.GetUser(r.Context(), authToken.UserId)
	if err != nil {
		log.Printf("Error getting user for token: %v\n", err)
		http.Error(w, "Error getting user: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	if user == nil {
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthentication,
			Status: http.StatusUnauthorized,
			Msg:    "Invalid token",
		})
		return nil, false
	}

	return user, true
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
