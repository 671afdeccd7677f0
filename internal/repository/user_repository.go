package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumalink/profile-service/internal/domain"
)

const userColumns = `id, email, username, name, password_hash, oauth_id, role, tier,
               is_verified, email_token, email_token_expires_at,
               verification_status, has_verified_badge, created_at, updated_at`

var userConstraints = map[string]error{
	"users_email_key":    ErrDuplicateEmail,
	"users_username_key": ErrDuplicateUsername,
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmailToken(ctx context.Context, token string) (*domain.User, error)
	UpsertByOAuthID(ctx context.Context, user *domain.User) error
	SetVerificationState(ctx context.Context, userID string, status domain.VerificationStatus, badge bool) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, username, name, password_hash, oauth_id, role, tier,
                           is_verified, email_token, email_token_expires_at, verification_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.OAuthID,
		user.Role,
		user.Tier,
		user.IsVerified,
		user.EmailToken,
		user.EmailTokenExpiry,
		user.VerificationStatus,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return duplicateFor(err, userConstraints)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, username=$2, name=$3, password_hash=$4, oauth_id=$5,
            role=$6, tier=$7, is_verified=$8, email_token=$9, email_token_expires_at=$10,
            updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.OAuthID,
		user.Role,
		user.Tier,
		user.IsVerified,
		user.EmailToken,
		user.EmailTokenExpiry,
		user.ID,
	)
	if err != nil {
		return duplicateFor(err, userConstraints)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
}

func (r *userRepository) GetByEmailToken(ctx context.Context, token string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE email_token=$1`, token)
}

// UpsertByOAuthID inserts a provider-sourced account or refreshes the
// existing one, as a single statement. The oauth_id uniqueness constraint
// makes concurrent first logins converge on one row instead of racing a
// read-then-write pair into duplicates.
func (r *userRepository) UpsertByOAuthID(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, username, name, oauth_id, role, tier, is_verified, verification_status)
        VALUES ($1,$2,$3,$4,$5,$6,TRUE,$7)
        ON CONFLICT (oauth_id) DO UPDATE SET name=EXCLUDED.name, updated_at=NOW()
        RETURNING ` + userColumns

	err := r.scanUser(r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.Name,
		user.OAuthID,
		user.Role,
		user.Tier,
		user.VerificationStatus,
	), user)
	if err != nil {
		return duplicateFor(err, userConstraints)
	}
	return nil
}

func (r *userRepository) SetVerificationState(ctx context.Context, userID string, status domain.VerificationStatus, badge bool) error {
	const query = `
        UPDATE users SET verification_status=$1, has_verified_badge=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, status, badge, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.scanUser(r.pool.QueryRow(ctx, query, arg), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.OAuthID,
		&user.Role,
		&user.Tier,
		&user.IsVerified,
		&user.EmailToken,
		&user.EmailTokenExpiry,
		&user.VerificationStatus,
		&user.HasVerifiedBadge,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
