package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/isuruAnjula/E-Commerce-Website/internal/domain"
)

// CredentialStore selects which credential table a lookup runs against.
// The admin table has no write path from the API.
type CredentialStore string

const (
	UserStore  CredentialStore = "user_login"
	AdminStore CredentialStore = "admin_login"
)

type CredentialRepo struct{ db *sqlx.DB }

func NewCredentialRepo(db *sqlx.DB) *CredentialRepo { return &CredentialRepo{db: db} }

// ByUsername returns every row for the username. user_login enforces no
// uniqueness, so login has to consider all of them.
func (r *CredentialRepo) ByUsername(ctx context.Context, store CredentialStore, username string) ([]domain.Credential, error) {
	out := []domain.Credential{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, username, password_hash FROM `+string(store)+` WHERE username = ?`, username)
	return out, err
}

func (r *CredentialRepo) InsertUser(ctx context.Context, username, hash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_login(username, password_hash) VALUES(?, ?)`, username, hash)
	return err
}
