package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const tokenExpirationDays = 90

var ErrInvalidToken = errors.New("invalid token")

// CreateAuthToken issues a token for the user. The client keeps the uuid;
// only its sha256 hash is stored.
func (s *Store) CreateAuthToken(ctx context.Context, userId string) (string, error) {
	uid := uuid.New()
	hashBytes := sha256.Sum256(uid[:])
	hash := hex.EncodeToString(hashBytes[:])

	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO auth_tokens (user_id, token_hash) VALUES ($1, $2)",
		userId, hash)

	if err != nil {
		return "", fmt.Errorf("error creating auth token: %v", err)
	}

	return uid.String(), nil
}

func (s *Store) ValidateAuthToken(ctx context.Context, token string) (*AuthToken, error) {
	uid, err := uuid.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	hashBytes := sha256.Sum256(uid[:])
	tokenHash := hex.EncodeToString(hashBytes[:])

	var authToken AuthToken
	err = s.conn.GetContext(ctx, &authToken,
		"SELECT * FROM auth_tokens WHERE token_hash = $1 AND created_at > $2 AND deleted_at IS NULL",
		tokenHash, time.Now().AddDate(0, 0, -tokenExpirationDays))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidToken
		}

		return nil, fmt.Errorf("error validating token: %v", err)
	}

	return &authToken, nil
}
