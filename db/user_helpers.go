package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var ErrDuplicateEmail = errors.New("email is already registered")

func (s *Store) CreateUser(ctx context.Context, user *User) error {
	err := s.conn.QueryRowContext(ctx,
		`INSERT INTO users (email, name, mobile_number, student_id, password_hash, role, branch, year, semester, managed_club, teaching_branches, teaching_semesters)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		user.Email,
		user.Name,
		user.MobileNumber,
		user.StudentId,
		user.PasswordHash,
		user.Role,
		user.Branch,
		user.Year,
		user.Semester,
		user.ManagedClub,
		user.TeachingBranches,
		user.TeachingSemesters,
	).Scan(&user.Id, &user.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}

		return fmt.Errorf("error creating user: %v", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, userId string) (*User, error) {
	// ids come straight from clients; a non-uuid id can't match any row
	if _, err := uuid.Parse(userId); err != nil {
		return nil, nil
	}

	var user User
	err := s.conn.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", userId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.conn.GetContext(ctx, &user, "SELECT * FROM users WHERE email = $1", email)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

// ListStudents returns student-role users whose branch and semester both fall
// inside the given sets. Callers short-circuit on empty sets before reaching
// the store.
func (s *Store) ListStudents(ctx context.Context, branches, semesters []string) ([]*User, error) {
	var users []*User
	err := s.conn.SelectContext(ctx, &users,
		"SELECT * FROM users WHERE role = 'student' AND branch = ANY($1) AND semester = ANY($2) ORDER BY name ASC",
		pq.Array(branches), pq.Array(semesters))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error listing students: %v", err)
	}

	return users, nil
}
