package db

import (
	"time"

	"campus-server/shared"

	"github.com/lib/pq"
)

// The models below are only used server-side. Models that reach the client
// have a ToApi() method returning the corresponding shared model, which keeps
// the password hash and token hashes out of responses.

type User struct {
	Id                string         `db:"id"`
	Email             string         `db:"email"`
	Name              string         `db:"name"`
	MobileNumber      *string        `db:"mobile_number"`
	StudentId         *string        `db:"student_id"`
	PasswordHash      string         `db:"password_hash"`
	Role              string         `db:"role"`
	Branch            *string        `db:"branch"`
	Year              *string        `db:"year"`
	Semester          *string        `db:"semester"`
	ManagedClub       *string        `db:"managed_club"`
	TeachingBranches  pq.StringArray `db:"teaching_branches"`
	TeachingSemesters pq.StringArray `db:"teaching_semesters"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (user *User) ToApi() *shared.User {
	return &shared.User{
		Id:                user.Id,
		Email:             user.Email,
		Name:              user.Name,
		Role:              user.Role,
		MobileNumber:      user.MobileNumber,
		StudentId:         user.StudentId,
		Branch:            user.Branch,
		Year:              user.Year,
		Semester:          user.Semester,
		ManagedClub:       user.ManagedClub,
		TeachingBranches:  user.TeachingBranches,
		TeachingSemesters: user.TeachingSemesters,
		CreatedAt:         user.CreatedAt,
	}
}

type Post struct {
	Id              string         `db:"id"`
	Type            string         `db:"type"`
	Title           string         `db:"title"`
	Content         *string        `db:"content"`
	Club            *string        `db:"club"`
	AuthorId        *string        `db:"author_id"`
	ImageUrl        *string        `db:"image_url"`
	TargetBranches  pq.StringArray `db:"target_branches"`
	TargetSemesters pq.StringArray `db:"target_semesters"`
	CreatedAt       time.Time      `db:"created_at"`
}

// PostWithAuthor is a post row joined with the author's display name.
type PostWithAuthor struct {
	Post
	AuthorName *string `db:"author_name"`
}

func (post *PostWithAuthor) ToApi() *shared.Post {
	return &shared.Post{
		Id:              post.Id,
		Type:            post.Type,
		Title:           post.Title,
		Content:         post.Content,
		Club:            post.Club,
		AuthorId:        post.AuthorId,
		AuthorName:      post.AuthorName,
		ImageUrl:        post.ImageUrl,
		TargetBranches:  post.TargetBranches,
		TargetSemesters: post.TargetSemesters,
		CreatedAt:       post.CreatedAt,
	}
}

type Comment struct {
	Id        string    `db:"id"`
	PostId    string    `db:"post_id"`
	AuthorId  *string   `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type CommentWithAuthor struct {
	Comment
	AuthorName *string `db:"author_name"`
}

func (comment *CommentWithAuthor) ToApi() *shared.Comment {
	return &shared.Comment{
		Id:         comment.Id,
		PostId:     comment.PostId,
		AuthorId:   comment.AuthorId,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

type AuthToken struct {
	Id        string     `db:"id"`
	UserId    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
