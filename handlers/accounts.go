package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"campus-server/db"
	"campus-server/shared"

	"github.com/lib/pq"
)

func (a *ApiHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for RegisterHandler")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var req shared.RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		http.Error(w, "Error parsing request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := hashPassword(r.Context(), req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v\n", err)
		http.Error(w, "Error hashing password: "+err.Error(), http.StatusInternalServerError)
		return
	}

	role := req.Role
	if role == "" {
		role = shared.RoleStudent
	}

	user := &db.User{
		Email:             req.Email,
		Name:              req.Name,
		PasswordHash:      hash,
		Role:              role,
		MobileNumber:      req.MobileNumber,
		StudentId:         req.StudentId,
		Branch:            req.Branch,
		Year:              req.Year,
		Semester:          req.Semester,
		TeachingBranches:  pq.StringArray(req.TeachingBranches),
		TeachingSemesters: pq.StringArray(req.TeachingSemesters),
	}

	if err := a.Store.CreateUser(r.Context(), user); err != nil {
		if err == db.ErrDuplicateEmail {
			log.Printf("Duplicate email on register: %s\n", req.Email)
			writeApiError(w, shared.ApiError{
				Type:   shared.ApiErrorTypeConflict,
				Status: http.StatusBadRequest,
				Msg:    "Email is already registered",
			})
			return
		}

		log.Printf("Error creating user: %v\n", err)
		http.Error(w, "Error creating user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Println("Successfully processed request for RegisterHandler")

	writeJson(w, shared.RegisterResponse{
		Id:    user.Id,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (a *ApiHandler) SignInHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for SignInHandler")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var req shared.SignInRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		http.Error(w, "Error parsing request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := a.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		http.Error(w, "Error getting user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if user == nil {
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthentication,
			Status: http.StatusUnauthorized,
			Msg:    "User not found",
		})
		return
	}

	if err := checkPassword(r.Context(), user.PasswordHash, req.Password); err != nil {
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthentication,
			Status: http.StatusUnauthorized,
			Msg:    "Invalid password",
		})
		return
	}

	token, err := a.Store.CreateAuthToken(r.Context(), user.Id)
	if err != nil {
		log.Printf("Error creating auth token: %v\n", err)
		http.Error(w, "Error creating auth token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Println("Successfully processed request for SignInHandler")

	writeJson(w, shared.SignInResponse{
		Message: "Login success",
		Token:   token,
		User:    *user.ToApi(),
	})
}
