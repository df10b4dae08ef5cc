package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-server/db"
	"campus-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommentsHandlerMissingPostId(t *testing.T) {
	a := NewApiHandler(newStubStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments", nil)
	rr := httptest.NewRecorder()

	a.ListCommentsHandler(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiErr shared.ApiError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
}

func TestListCommentsHandler(t *testing.T) {
	now := time.Now()
	store := newStubStore()
	store.comments = []*db.CommentWithAuthor{
		{
			Comment:    db.Comment{Id: "c1", PostId: "p1", Content: "first", CreatedAt: now.Add(-time.Hour)},
			AuthorName: strPtr("Alice"),
		},
		{
			Comment:    db.Comment{Id: "c2", PostId: "p1", Content: "second", CreatedAt: now},
			AuthorName: strPtr("Bob"),
		},
	}
	a := NewApiHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments?post_id=p1", nil)
	rr := httptest.NewRecorder()

	a.ListCommentsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp shared.ListCommentsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first", resp.Data[0].Content, "comments keep chronological order")
	assert.Equal(t, "second", resp.Data[1].Content)
}

func TestCreateCommentHandler(t *testing.T) {
	store := newStubStore()
	a := NewApiHandler(store, nil)

	body := `{"post_id":"p1","author_id":"u1","content":"same doubt here"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.CreateCommentHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp shared.CreateCommentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Id)
	assert.Equal(t, "Comment added", resp.Message)

	require.Len(t, store.createdComments, 1)
	assert.Equal(t, "p1", store.createdComments[0].PostId)
}

func TestCreateCommentHandlerUnknownPost(t *testing.T) {
	store := newStubStore()
	store.createCommentErr = db.ErrUnknownReference
	a := NewApiHandler(store, nil)

	body := `{"post_id":"missing","author_id":"u1","content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(body))
	rr := httptest.NewRecorder()

	a.CreateCommentHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
