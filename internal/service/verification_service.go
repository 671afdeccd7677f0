package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/events"
	"github.com/lumalink/profile-service/internal/repository"
	"github.com/lumalink/profile-service/pkg/util"
)

// VerificationService manages badge request submission and admin review.
type VerificationService struct {
	requests   repository.VerificationRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewVerificationService builds the service.
func NewVerificationService(requests repository.VerificationRepository, users repository.UserRepository, dispatcher events.Dispatcher) *VerificationService {
	return &VerificationService{requests: requests, users: users, dispatcher: dispatcher}
}

// Submit files a badge request for the user. One outstanding PENDING
// request is allowed per user regardless of type.
func (s *VerificationService) Submit(ctx context.Context, userID string, reqType domain.VerificationType, evidence domain.Evidence) (*domain.VerificationRequest, error) {
	if missing := evidence.MissingFields(reqType); len(missing) > 0 {
		details := map[string]any{"missing": missing}
		return nil, util.NewValidationError("evidence incomplete for requested type", details)
	}

	req := &domain.VerificationRequest{
		UserID:   userID,
		Type:     reqType,
		Status:   domain.VerificationPending,
		Evidence: evidence,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicatePending) {
			return nil, ErrPendingRequestExists
		}
		return nil, err
	}

	if err := s.users.SetVerificationState(ctx, userID, domain.VerificationPending, false); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventVerificationSubmitted, userID, events.VerificationSubmittedPayload{
		RequestID: req.ID,
		Type:      req.Type,
	})
	return req, nil
}

// Review applies an admin decision to a request. Authorization is the
// caller's responsibility; this component only guards the state machine.
func (s *VerificationService) Review(ctx context.Context, requestID string, decision domain.ReviewDecision, reviewerID string, notes string) (*domain.VerificationRequest, error) {
	target, ok := decision.TargetStatus()
	if !ok {
		return nil, util.NewValidationError("unknown review decision", map[string]any{"decision": decision})
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("verification request", nil)
		}
		return nil, err
	}
	if !req.Status.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	req.Status = target
	req.ReviewedAt = &now
	req.ReviewerID = &reviewerID
	if notes != "" {
		req.Notes = &notes
	}
	if err := s.requests.RecordReview(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race with another reviewer
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	badge := target == domain.VerificationApproved
	if err := s.users.SetVerificationState(ctx, req.UserID, target, badge); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventVerificationReviewed, req.UserID, events.VerificationReviewedPayload{
		RequestID: req.ID,
		Decision:  decision,
		Status:    target,
	})
	return req, nil
}

// ListForUser returns the user's submission history, newest first.
func (s *VerificationService) ListForUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error) {
	return s.requests.ListByUser(ctx, userID)
}

// ListPending returns the admin review queue, oldest first.
func (s *VerificationService) ListPending(ctx context.Context, limit, offset int) ([]domain.VerificationRequest, error) {
	return s.requests.ListPending(ctx, limit, offset)
}

func (s *VerificationService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
