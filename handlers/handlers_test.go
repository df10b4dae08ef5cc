package handlers

import (
	"context"
	"fmt"

	"campus-server/db"
)

// stubStore is a test double for the Store interface.
type stubStore struct {
	usersById    map[string]*db.User
	usersByEmail map[string]*db.User
	tokenUsers   map[string]string // token -> user id

	createUserErr    error
	createCommentErr error

	posts           []*db.PostWithAuthor
	comments        []*db.CommentWithAuthor
	students        []*db.User
	createdPosts    []*db.Post
	createdComments []*db.Comment

	listPostsParams    *db.ListPostsParams
	listStudentsCalled bool
}

func newStubStore() *stubStore {
	return &stubStore{
		usersById:    map[string]*db.User{},
		usersByEmail: map[string]*db.User{},
		tokenUsers:   map[string]string{},
	}
}

func (s *stubStore) addUser(user *db.User) {
	s.usersById[user.Id] = user
	s.usersByEmail[user.Email] = user
}

func (s *stubStore) CreateUser(ctx context.Context, user *db.User) error {
	if s.createUserErr != nil {
		return s.createUserErr
	}
	user.Id = fmt.Sprintf("user-%d", len(s.usersById)+1)
	s.addUser(user)
	return nil
}

func (s *stubStore) GetUser(ctx context.Context, userId string) (*db.User, error) {
	return s.usersById[userId], nil
}

func (s *stubStore) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	return s.usersByEmail[email], nil
}

func (s *stubStore) ListStudents(ctx context.Context, branches, semesters []string) ([]*db.User, error) {
	s.listStudentsCalled = true
	return s.students, nil
}

func (s *stubStore) ListPosts(ctx context.Context, params db.ListPostsParams) ([]*db.PostWithAuthor, error) {
	s.listPostsParams = &params
	return s.posts, nil
}

func (s *stubStore) CreatePost(ctx context.Context, post *db.Post) error {
	post.Id = fmt.Sprintf("post-%d", len(s.createdPosts)+1)
	s.createdPosts = append(s.createdPosts, post)
	return nil
}

func (s *stubStore) ListComments(ctx context.Context, postId string) ([]*db.CommentWithAuthor, error) {
	return s.comments, nil
}

func (s *stubStore) CreateComment(ctx context.Context, comment *db.Comment) error {
	if s.createCommentErr != nil {
		return s.createCommentErr
	}
	comment.Id = fmt.Sprintf("comment-%d", len(s.createdComments)+1)
	s.createdComments = append(s.createdComments, comment)
	return nil
}

func (s *stubStore) CreateAuthToken(ctx context.Context, userId string) (string, error) {
	return "test-token", nil
}

func (s *stubStore) ValidateAuthToken(ctx context.Context, token string) (*db.AuthToken, error) {
	userId, ok := s.tokenUsers[token]
	if !ok {
		return nil, db.ErrInvalidToken
	}
	return &db.AuthToken{Id: "token-1", UserId: userId}, nil
}

func strPtr(s string) *string {
	return &s
}
