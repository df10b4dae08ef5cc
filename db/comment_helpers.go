package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var ErrUnknownReference = errors.New("referenced row does not exist")

// ListComments returns a post's comments in conversational order, oldest
// first.
func (s *Store) ListComments(ctx context.Context, postId string) ([]*CommentWithAuthor, error) {
	if _, err := uuid.Parse(postId); err != nil {
		return nil, nil
	}

	var comments []*CommentWithAuthor
	err := s.conn.SelectContext(ctx, &comments,
		`SELECT comments.*, users.name AS author_name
		 FROM comments LEFT JOIN users ON comments.author_id = users.id
		 WHERE comments.post_id = $1
		 ORDER BY comments.created_at ASC`,
		postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error listing comments: %v", err)
	}

	return comments, nil
}

func (s *Store) CreateComment(ctx context.Context, comment *Comment) error {
	err := s.conn.QueryRowContext(ctx,
		`INSERT INTO comments (post_id, author_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		comment.PostId,
		comment.AuthorId,
		comment.Content,
	).Scan(&comment.Id, &comment.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && (pqErr.Code == "23503" || pqErr.Code == "22P02") {
			// foreign key violation, or a non-uuid id that can't reference anything
			return ErrUnknownReference
		}

		return fmt.Errorf("error creating comment: %v", err)
	}

	return nil
}
