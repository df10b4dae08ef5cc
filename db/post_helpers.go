package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"campus-server/shared"
)

// ListPostsParams carries the filter inputs for ListPosts. Role, branch and
// semester only matter when listing notes.
type ListPostsParams struct {
	Type         string
	Club         string
	UserRole     string
	UserBranch   string
	UserSemester string
}

func (s *Store) ListPosts(ctx context.Context, params ListPostsParams) ([]*PostWithAuthor, error) {
	query, args := buildListPostsQuery(params)

	var posts []*PostWithAuthor
	err := s.conn.SelectContext(ctx, &posts, query, args...)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	return posts, nil
}

// buildListPostsQuery assembles the conjunctive filter for the post listing.
// For notes requested by a student, a note is visible when its target arrays
// are empty or contain the student's branch and semester. Teachers get no
// extra predicate and see all notes regardless of teaching assignments.
func buildListPostsQuery(params ListPostsParams) (string, []interface{}) {
	query := "SELECT posts.*, users.name AS author_name FROM posts LEFT JOIN users ON posts.author_id = users.id"

	var where []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Type != "" {
		where = append(where, "posts.type = "+arg(params.Type))
	}
	if params.Club != "" {
		where = append(where, "posts.club = "+arg(params.Club))
	}

	if params.Type == shared.PostTypeNote && params.UserRole == shared.RoleStudent {
		where = append(where, fmt.Sprintf(
			"(posts.target_branches IS NULL OR cardinality(posts.target_branches) = 0 OR %s = ANY(posts.target_branches))",
			arg(params.UserBranch)))
		where = append(where, fmt.Sprintf(
			"(posts.target_semesters IS NULL OR cardinality(posts.target_semesters) = 0 OR %s = ANY(posts.target_semesters))",
			arg(params.UserSemester)))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY posts.created_at DESC"

	return query, args
}

func (s *Store) CreatePost(ctx context.Context, post *Post) error {
	err := s.conn.QueryRowContext(ctx,
		`INSERT INTO posts (type, title, content, club, author_id, image_url, target_branches, target_semesters)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		post.Type,
		post.Title,
		post.Content,
		post.Club,
		post.AuthorId,
		post.ImageUrl,
		post.TargetBranches,
		post.TargetSemesters,
	).Scan(&post.Id, &post.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating post: %v", err)
	}

	return nil
}
