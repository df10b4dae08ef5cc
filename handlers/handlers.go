package handlers

import (
	"context"

	"campus-server/db"
	"campus-server/images"
)

// Store is the slice of the db layer the handlers use. Tests swap in a
// double instead of a live connection.
type Store interface {
	CreateUser(ctx context.Context, user *db.User) error
	GetUser(ctx context.Context, userId string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	ListStudents(ctx context.Context, branches, semesters []string) ([]*db.User, error)

	ListPosts(ctx context.Context, params db.ListPostsParams) ([]*db.PostWithAuthor, error)
	CreatePost(ctx context.Context, post *db.Post) error

	ListComments(ctx context.Context, postId string) ([]*db.CommentWithAuthor, error)
	CreateComment(ctx context.Context, comment *db.Comment) error

	CreateAuthToken(ctx context.Context, userId string) (string, error)
	ValidateAuthToken(ctx context.Context, token string) (*db.AuthToken, error)
}

type ApiHandler struct {
	Store  Store
	Images *images.Storage
}

func NewApiHandler(store Store, images *images.Storage) *ApiHandler {
	return &ApiHandler{Store: store, Images: images}
}
