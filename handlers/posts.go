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

func (a *ApiHandler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListPostsHandler")

	query := r.URL.Query()

	// user_teaching_branches is accepted for compatibility but adds no
	// predicate: teachers see all notes regardless of teaching assignments.
	params := db.ListPostsParams{
		Type:         query.Get("type"),
		Club:         query.Get("club"),
		UserRole:     query.Get("user_role"),
		UserBranch:   query.Get("user_branch"),
		UserSemester: query.Get("user_semester"),
	}

	posts, err := a.Store.ListPosts(r.Context(), params)
	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		http.Error(w, "Error listing posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	apiPosts := make([]*shared.Post, 0, len(posts))
	for _, post := range posts {
		apiPosts = append(apiPosts, post.ToApi())
	}

	log.Println("Successfully processed request for ListPostsHandler")

	writeJson(w, shared.ListPostsResponse{Data: apiPosts})
}

func (a *ApiHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreatePostHandler")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var req shared.CreatePostRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		http.Error(w, "Error parsing request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	author, ok := a.authenticateOptional(w, r)
	if !ok {
		return
	}

	if author == nil {
		// legacy path: the client resubmits its identity as author_id
		author, err = a.Store.GetUser(r.Context(), req.AuthorId)
		if err != nil {
			log.Printf("Error getting author: %v\n", err)
			http.Error(w, "Error getting author: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if author == nil {
			writeApiError(w, shared.ApiError{
				Type:   shared.ApiErrorTypeAuthentication,
				Status: http.StatusUnauthorized,
				Msg:    "Unknown author",
			})
			return
		}
	}

	if req.Type == shared.PostTypeEvent && !canPostEvent(author, req.Club) {
		log.Printf("User %s is not allowed to post events for club %q\n", author.Id, req.Club)
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeAuthorization,
			Status: http.StatusForbidden,
			Msg:    "Only an admin or the club's lead can post events for this club",
		})
		return
	}

	post := &db.Post{
		Type:            req.Type,
		Title:           req.Title,
		Content:         req.Content,
		Club:            nullable(req.Club),
		AuthorId:        &author.Id,
		ImageUrl:        req.ImageUrl,
		TargetBranches:  pq.StringArray(req.TargetBranches),
		TargetSemesters: pq.StringArray(req.TargetSemesters),
	}

	if err := a.Store.CreatePost(r.Context(), post); err != nil {
		log.Printf("Error creating post: %v\n", err)
		http.Error(w, "Error creating post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Println("Successfully processed request for CreatePostHandler")

	writeJson(w, shared.CreatePostResponse{
		Id:      post.Id,
		Message: "Post created",
	})
}

// canPostEvent gates event posts: global admins always may, club leads only
// for their own club. The acting user is always loaded fresh from the store,
// never taken from the request body.
func canPostEvent(user *db.User, club string) bool {
	if user.Role == shared.RoleAdmin {
		return true
	}

	return user.Role == shared.RoleStudent &&
		user.ManagedClub != nil &&
		*user.ManagedClub == club
}
