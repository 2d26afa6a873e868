package repository

import (
	"context"
	"errors"

	"webshopper/internal/domain/credential"
	"webshopper/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CredentialRepository struct {
	db *pgxpool.Pool
}

func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Find(ctx context.Context, userID uuid.UUID) (credential.Pair, error) {
	row := r.db.QueryRow(ctx,
		`SELECT access_token, access_issued_at, refresh_token, refresh_issued_at
		 FROM kroger_credentials WHERE user_id = $1`,
		userID,
	)

	var pair credential.Pair
	err := row.Scan(&pair.AccessToken, &pair.AccessIssuedAt, &pair.RefreshToken, &pair.RefreshIssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Pair{}, infra.WrapRepoErr("credentials not found", err, infra.KindNotFound)
		}
		return credential.Pair{}, infra.WrapRepoErr("failed to load credentials", err)
	}
	return pair, nil
}

// Save replaces the whole pair in a single upsert so both tokens and both
// timestamps always change together. Last writer wins across concurrent
// refreshes; either outcome is a valid pair.
func (r *CredentialRepository) Save(ctx context.Context, userID uuid.UUID, pair credential.Pair) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO kroger_credentials (user_id, access_token, access_issued_at, refresh_token, refresh_issued_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			access_issued_at = EXCLUDED.access_issued_at,
			refresh_token = EXCLUDED.refresh_token,
			refresh_issued_at = EXCLUDED.refresh_issued_at`,
		userID, pair.AccessToken, pair.AccessIssuedAt, pair.RefreshToken, pair.RefreshIssuedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save credentials", err)
	}
	return nil
}
