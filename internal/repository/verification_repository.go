package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumalink/profile-service/internal/domain"
)

var verificationConstraints = map[string]error{
	"verification_requests_one_pending_per_user": ErrDuplicatePending,
}

// VerificationRepository encapsulates verification request persistence.
type VerificationRepository interface {
	Create(ctx context.Context, req *domain.VerificationRequest) error
	GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error)
	ListPending(ctx context.Context, limit, offset int) ([]domain.VerificationRequest, error)
	RecordReview(ctx context.Context, req *domain.VerificationRequest) error
}

type verificationRepository struct {
	pool *pgxpool.Pool
}

// NewVerificationRepository instantiates repository.
func NewVerificationRepository(pool *pgxpool.Pool) VerificationRepository {
	return &verificationRepository{pool: pool}
}

// Create inserts a PENDING request. A partial unique index on
// (user_id) WHERE status='PENDING' enforces the one-outstanding-request
// policy even under concurrent submissions; violations surface as
// ErrDuplicatePending.
func (r *verificationRepository) Create(ctx context.Context, req *domain.VerificationRequest) error {
	evidence, err := json.Marshal(req.Evidence)
	if err != nil {
		return fmt.Errorf("encode evidence: %w", err)
	}

	const query = `
        INSERT INTO verification_requests (user_id, type, status, evidence)
        VALUES ($1,$2,$3,$4)
        RETURNING id, submitted_at`
	if err := r.pool.QueryRow(ctx, query,
		req.UserID,
		req.Type,
		req.Status,
		evidence,
	).Scan(&req.ID, &req.SubmittedAt); err != nil {
		return duplicateFor(err, verificationConstraints)
	}
	return nil
}

func (r *verificationRepository) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	const query = `
        SELECT id, user_id, type, status, evidence, submitted_at, reviewed_at, reviewer_id, notes
        FROM verification_requests WHERE id=$1`

	var (
		req      domain.VerificationRequest
		evidence []byte
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.UserID,
		&req.Type,
		&req.Status,
		&evidence,
		&req.SubmittedAt,
		&req.ReviewedAt,
		&req.ReviewerID,
		&req.Notes,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(evidence, &req.Evidence); err != nil {
		return nil, fmt.Errorf("decode evidence: %w", err)
	}
	return &req, nil
}

func (r *verificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error) {
	const query = `
        SELECT id, user_id, type, status, evidence, submitted_at, reviewed_at, reviewer_id, notes
        FROM verification_requests WHERE user_id=$1
        ORDER BY submitted_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *verificationRepository) ListPending(ctx context.Context, limit, offset int) ([]domain.VerificationRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, user_id, type, status, evidence, submitted_at, reviewed_at, reviewer_id, notes
        FROM verification_requests WHERE status=$1
        ORDER BY submitted_at ASC
        LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, domain.VerificationPending, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// RecordReview persists the outcome of an admin decision. The WHERE clause
// repeats the expected current status so a concurrent review of the same
// request loses cleanly instead of overwriting.
func (r *verificationRepository) RecordReview(ctx context.Context, req *domain.VerificationRequest) error {
	const query = `
        UPDATE verification_requests
        SET status=$1, reviewed_at=$2, reviewer_id=$3, notes=$4
        WHERE id=$5 AND status=$6`

	from := domain.VerificationPending
	if req.Status == domain.VerificationRevoked {
		from = domain.VerificationApproved
	}

	cmd, err := r.pool.Exec(ctx, query,
		req.Status,
		req.ReviewedAt,
		req.ReviewerID,
		req.Notes,
		req.ID,
		from,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectRequests(rows pgx.Rows) ([]domain.VerificationRequest, error) {
	var requests []domain.VerificationRequest
	for rows.Next() {
		var (
			req      domain.VerificationRequest
			evidence []byte
		)
		if err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.Type,
			&req.Status,
			&evidence,
			&req.SubmittedAt,
			&req.ReviewedAt,
			&req.ReviewerID,
			&req.Notes,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(evidence, &req.Evidence); err != nil {
			return nil, fmt.Errorf("decode evidence: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
