package routes

import (
	"fmt"
	"net/http"

	"campus-server/handlers"

	"github.com/gorilla/mux"
)

func AddHealthRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	}).Methods("GET")
}

func AddApiRoutes(r *mux.Router, h *handlers.ApiHandler) {
	r.HandleFunc("/api/register", h.RegisterHandler).Methods("POST")
	r.HandleFunc("/api/login", h.SignInHandler).Methods("POST")

	r.HandleFunc("/api/posts", h.ListPostsHandler).Methods("GET")
	r.HandleFunc("/api/posts", h.CreatePostHandler).Methods("POST")

	r.HandleFunc("/api/comments", h.ListCommentsHandler).Methods("GET")
	r.HandleFunc("/api/comments", h.CreateCommentHandler).Methods("POST")

	r.HandleFunc("/api/my-students", h.ListMyStudentsHandler).Methods("GET")

	r.HandleFunc("/api/uploads", h.UploadImageHandler).Methods("POST")
}

// AddUploadsRoute serves locally stored images. Production serves them from
// S3 instead.
func AddUploadsRoute(r *mux.Router, dir string) {
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir))))
}
