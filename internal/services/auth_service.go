package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
)

var ErrBadCreds = errors.New("invalid username or password")

const bcryptCost = 12

type AuthService struct {
	Creds   *repos.CredentialRepo
	Timeout time.Duration
}

func NewAuthService(creds *repos.CredentialRepo, timeout time.Duration) *AuthService {
	return &AuthService{Creds: creds, Timeout: timeout}
}

// Login verifies the claimed password against every stored row for the
// username (the user table enforces no uniqueness). Any match wins.
func (s *AuthService) Login(ctx context.Context, store repos.CredentialStore, username, password string) error {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	rows, err := s.Creds.ByUsername(ctx, store, username)
	if err != nil {
		return err
	}
	for _, cr := range rows {
		if bcrypt.CompareHashAndPassword([]byte(cr.Hash), []byte(password)) == nil {
			return nil
		}
	}
	return ErrBadCreds
}

// Signup stores a new user credential unconditionally; duplicates are
// allowed, as they always were.
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Creds.InsertUser(ctx, username, string(hash))
}
