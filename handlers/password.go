package handlers

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt is deliberately slow, so both operations run off the request
// goroutine and abort when the request context is canceled.

func hashPassword(ctx context.Context, password string) (string, error) {
	type result struct {
		hash []byte
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		ch <- result{hash, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return string(res.hash), res.err
	}
}

func checkPassword(ctx context.Context, hash, password string) error {
	ch := make(chan error, 1)
	go func() {
		ch <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-ch:
		return err
	}
}
