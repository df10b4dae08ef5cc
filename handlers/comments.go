package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"campus-server/db"
	"campus-server/shared"
)

func (a *ApiHandler) ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListCommentsHandler")

	postId := r.URL.Query().Get("post_id")
	if postId == "" {
		writeApiError(w, shared.ApiError{
			Type:   shared.ApiErrorTypeValidation,
			Status: http.StatusBadRequest,
			Msg:    "Post ID required",
		})
		return
	}

	comments, err := a.Store.ListComments(r.Context(), postId)
	if err != nil {
		log.Printf("Error listing comments: %v\n", err)
		http.Error(w, "Error listing comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	apiComments := make([]*shared.Comment, 0, len(comments))
	for _, comment := range comments {
		apiComments = append(apiComments, comment.ToApi())
	}

	log.Println("Successfully processed request for ListCommentsHandler")

	writeJson(w, shared.ListCommentsResponse{Data: apiComments})
}

func (a *ApiHandler) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for CreateCommentHandler")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading request body: %v\n", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var req shared.CreateCommentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing request body: %v\n", err)
		http.Error(w, "Error parsing request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	actor, ok := a.authenticateOptional(w, r)
	if !ok {
		return
	}

	authorId := req.AuthorId
	if actor != nil {
		authorId = actor.Id
	}

	comment := &db.Comment{
		PostId:   req.PostId,
		AuthorId: nullable(authorId),
		Content:  req.Content,
	}

	if err := a.Store.CreateComment(r.Context(), comment); err != nil {
		if err == db.ErrUnknownReference {
			writeApiError(w, shared.ApiError{
				Type:   shared.ApiErrorTypeValidation,
				Status: http.StatusBadRequest,
				Msg:    "Unknown post or author",
			})
			return
		}

		log.Printf("Error creating comment: %v\n", err)
		http.Error(w, "Error creating comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Println("Successfully processed request for CreateCommentHandler")

	writeJson(w, shared.CreateCommentResponse{
		Id:      comment.Id,
		Message: "Comment added",
	})
}
