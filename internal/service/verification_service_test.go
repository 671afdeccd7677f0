package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/events"
	"github.com/lumalink/profile-service/internal/repository"
	"github.com/lumalink/profile-service/pkg/util"
)

func identityEvidence() domain.Evidence {
	return domain.Evidence{DocumentURL: "https://cdn.example.com/id-card.jpg"}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	var userState []domain.VerificationStatus
	requests := &verificationRepoMock{
		createFunc: func(_ context.Context, req *domain.VerificationRequest) error {
			req.ID = "req-1"
			return nil
		},
	}
	users := &userRepoMock{
		setVerificationFunc: func(_ context.Context, userID string, status domain.VerificationStatus, badge bool) error {
			require.Equal(t, "user-1", userID)
			require.False(t, badge)
			userState = append(userState, status)
			return nil
		},
	}
	svc := NewVerificationService(requests, users, events.NewInMemoryDispatcher())

	req, err := svc.Submit(context.Background(), "user-1", domain.VerificationTypeIdentity, identityEvidence())
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, req.Status)
	assert.Equal(t, []domain.VerificationStatus{domain.VerificationPending}, userState)
}

func TestSubmitRejectsIncompleteEvidence(t *testing.T) {
	svc := NewVerificationService(&verificationRepoMock{}, &userRepoMock{}, nil)

	_, err := svc.Submit(context.Background(), "user-1", domain.VerificationTypeSocial, domain.Evidence{})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestSubmitWhilePendingFails(t *testing.T) {
	requests := &verificationRepoMock{
		createFunc: func(_ context.Context, _ *domain.VerificationRequest) error {
			return repository.ErrDuplicatePending
		},
	}
	svc := NewVerificationService(requests, &userRepoMock{}, nil)

	_, err := svc.Submit(context.Background(), "user-1", domain.VerificationTypeIdentity, identityEvidence())
	require.ErrorIs(t, err, ErrPendingRequestExists)
}

func TestResubmitAfterRejection(t *testing.T) {
	// the partial unique index only covers PENDING rows, so a rejected
	// request no longer blocks a new submission
	requests := &verificationRepoMock{
		createFunc: func(_ context.Context, req *domain.VerificationRequest) error {
			req.ID = "req-2"
			return nil
		},
	}
	svc := NewVerificationService(requests, &userRepoMock{}, nil)

	req, err := svc.Submit(context.Background(), "user-1", domain.VerificationTypeBusiness, domain.Evidence{RegistrationNo: "HRB-123"})
	require.NoError(t, err)
	assert.Equal(t, "req-2", req.ID)
}

func reviewFixture(status domain.VerificationStatus) *verificationRepoMock {
	return &verificationRepoMock{
		getByIDFunc: func(_ context.Context, id string) (*domain.VerificationRequest, error) {
			return &domain.VerificationRequest{
				ID:       id,
				UserID:   "user-1",
				Type:     domain.VerificationTypeIdentity,
				Status:   status,
				Evidence: identityEvidence(),
			}, nil
		},
	}
}

func TestReviewApprove(t *testing.T) {
	requests := reviewFixture(domain.VerificationPending)
	var gotStatus domain.VerificationStatus
	var gotBadge bool
	users := &userRepoMock{
		setVerificationFunc: func(_ context.Context, _ string, status domain.VerificationStatus, badge bool) error {
			gotStatus, gotBadge = status, badge
			return nil
		},
	}
	svc := NewVerificationService(requests, users, events.NewInMemoryDispatcher())

	req, err := svc.Review(context.Background(), "req-1", domain.DecisionApprove, "admin-1", "looks good")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationApproved, req.Status)
	require.NotNil(t, req.ReviewedAt)
	require.NotNil(t, req.ReviewerID)
	assert.Equal(t, "admin-1", *req.ReviewerID)
	assert.Equal(t, domain.VerificationApproved, gotStatus)
	assert.True(t, gotBadge)
}

func TestReviewReject(t *testing.T) {
	requests := reviewFixture(domain.VerificationPending)
	var gotBadge bool
	users := &userRepoMock{
		setVerificationFunc: func(_ context.Context, _ string, _ domain.VerificationStatus, badge bool) error {
			gotBadge = badge
			return nil
		},
	}
	svc := NewVerificationService(requests, users, nil)

	req, err := svc.Review(context.Background(), "req-1", domain.DecisionReject, "admin-1", "document unreadable")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationRejected, req.Status)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "document unreadable", *req.Notes)
	assert.False(t, gotBadge)
}

func TestReviewRevokeClearsBadge(t *testing.T) {
	requests := reviewFixture(domain.VerificationApproved)
	var gotStatus domain.VerificationStatus
	var gotBadge bool
	users := &userRepoMock{
		setVerificationFunc: func(_ context.Context, _ string, status domain.VerificationStatus, badge bool) error {
			gotStatus, gotBadge = status, badge
			return nil
		},
	}
	svc := NewVerificationService(requests, users, nil)

	req, err := svc.Review(context.Background(), "req-1", domain.DecisionRevoke, "admin-1", "")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationRevoked, req.Status)
	assert.Equal(t, domain.VerificationRevoked, gotStatus)
	assert.False(t, gotBadge)
}

func TestReviewInvalidTransitions(t *testing.T) {
	tests := []struct {
		name     string
		current  domain.VerificationStatus
		decision domain.ReviewDecision
	}{
		{name: "approve already approved", current: domain.VerificationApproved, decision: domain.DecisionApprove},
		{name: "reject already approved", current: domain.VerificationApproved, decision: domain.DecisionReject},
		{name: "revoke pending", current: domain.VerificationPending, decision: domain.DecisionRevoke},
		{name: "approve rejected", current: domain.VerificationRejected, decision: domain.DecisionApprove},
		{name: "revoke revoked", current: domain.VerificationRevoked, decision: domain.DecisionRevoke},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVerificationService(reviewFixture(tt.current), &userRepoMock{}, nil)
			_, err := svc.Review(context.Background(), "req-1", tt.decision, "admin-1", "")
			require.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestReviewUnknownDecision(t *testing.T) {
	svc := NewVerificationService(reviewFixture(domain.VerificationPending), &userRepoMock{}, nil)

	_, err := svc.Review(context.Background(), "req-1", domain.ReviewDecision("ESCALATE"), "admin-1", "")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestReviewLostRace(t *testing.T) {
	requests := reviewFixture(domain.VerificationPending)
	requests.recordReviewFunc = func(_ context.Context, _ *domain.VerificationRequest) error {
		return pgx.ErrNoRows
	}
	svc := NewVerificationService(requests, &userRepoMock{}, nil)

	_, err := svc.Review(context.Background(), "req-1", domain.DecisionApprove, "admin-1", "")
	require.ErrorIs(t, err, ErrInvalidTransition)
}
