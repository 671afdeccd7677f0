package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/repository"
)

type userRepoMock struct {
	createFunc          func(ctx context.Context, user *domain.User) error
	updateFunc          func(ctx context.Context, user *domain.User) error
	getByIDFunc         func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	getByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	getByEmailTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	upsertByOAuthIDFunc func(ctx context.Context, user *domain.User) error
	setVerificationFunc func(ctx context.Context, userID string, status domain.VerificationStatus, badge bool) error
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, user)
}

func (m *userRepoMock) Update(ctx context.Context, user *domain.User) error {
	if m.updateFunc == nil {
		return nil
	}
	return m.updateFunc(ctx, user)
}

func (m *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByUsernameFunc(ctx, username)
}

func (m *userRepoMock) GetByEmailToken(ctx context.Context, token string) (*domain.User, error) {
	if m.getByEmailTokenFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByEmailTokenFunc(ctx, token)
}

func (m *userRepoMock) UpsertByOAuthID(ctx context.Context, user *domain.User) error {
	if m.upsertByOAuthIDFunc == nil {
		return nil
	}
	return m.upsertByOAuthIDFunc(ctx, user)
}

func (m *userRepoMock) SetVerificationState(ctx context.Context, userID string, status domain.VerificationStatus, badge bool) error {
	if m.setVerificationFunc == nil {
		return nil
	}
	return m.setVerificationFunc(ctx, userID, status, badge)
}

type resetRepoMock struct {
	createFunc     func(ctx context.Context, token *repository.PasswordResetToken) error
	getByTokenFunc func(ctx context.Context, token string) (*repository.PasswordResetToken, error)
	markUsedFunc   func(ctx context.Context, id string) error
}

func (m *resetRepoMock) Create(ctx context.Context, token *repository.PasswordResetToken) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, token)
}

func (m *resetRepoMock) GetByToken(ctx context.Context, token string) (*repository.PasswordResetToken, error) {
	if m.getByTokenFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByTokenFunc(ctx, token)
}

func (m *resetRepoMock) MarkUsed(ctx context.Context, id string) error {
	if m.markUsedFunc == nil {
		return nil
	}
	return m.markUsedFunc(ctx, id)
}

type verificationRepoMock struct {
	createFunc       func(ctx context.Context, req *domain.VerificationRequest) error
	getByIDFunc      func(ctx context.Context, id string) (*domain.VerificationRequest, error)
	listByUserFunc   func(ctx context.Context, userID string) ([]domain.VerificationRequest, error)
	listPendingFunc  func(ctx context.Context, limit, offset int) ([]domain.VerificationRequest, error)
	recordReviewFunc func(ctx context.Context, req *domain.VerificationRequest) error
}

func (m *verificationRepoMock) Create(ctx context.Context, req *domain.VerificationRequest) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, req)
}

func (m *verificationRepoMock) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	if m.getByIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByIDFunc(ctx, id)
}

func (m *verificationRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error) {
	if m.listByUserFunc == nil {
		return nil, nil
	}
	return m.listByUserFunc(ctx, userID)
}

func (m *verificationRepoMock) ListPending(ctx context.Context, limit, offset int) ([]domain.VerificationRequest, error) {
	if m.listPendingFunc == nil {
		return nil, nil
	}
	return m.listPendingFunc(ctx, limit, offset)
}

func (m *verificationRepoMock) RecordReview(ctx context.Context, req *domain.VerificationRequest) error {
	if m.recordReviewFunc == nil {
		return nil
	}
	return m.recordReviewFunc(ctx, req)
}

type profileRepoMock struct {
	createFunc      func(ctx context.Context, profile *domain.Profile) error
	updateFunc      func(ctx context.Context, profile *domain.Profile) error
	getByUserIDFunc func(ctx context.Context, userID string) (*domain.Profile, error)
	getByIDFunc     func(ctx context.Context, id string) (*domain.Profile, error)
}

func (m *profileRepoMock) Create(ctx context.Context, profile *domain.Profile) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, profile)
}

func (m *profileRepoMock) Update(ctx context.Context, profile *domain.Profile) error {
	if m.updateFunc == nil {
		return nil
	}
	return m.updateFunc(ctx, profile)
}

func (m *profileRepoMock) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.getByUserIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByUserIDFunc(ctx, userID)
}

func (m *profileRepoMock) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.getByIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByIDFunc(ctx, id)
}

type templateRepoMock struct {
	getByIDFunc func(ctx context.Context, id string) (*domain.Template, error)
	listFunc    func(ctx context.Context) ([]domain.Template, error)
}

func (m *templateRepoMock) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	if m.getByIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByIDFunc(ctx, id)
}

func (m *templateRepoMock) List(ctx context.Context) ([]domain.Template, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(ctx)
}

type pageRepoMock struct {
	createFunc        func(ctx context.Context, page *domain.Page) error
	updateFunc        func(ctx context.Context, page *domain.Page) error
	deleteFunc        func(ctx context.Context, id string) error
	getByIDFunc       func(ctx context.Context, id string) (*domain.Page, error)
	listByProfileFunc func(ctx context.Context, profileID string, publishedOnly bool) ([]domain.Page, error)
	reorderFunc       func(ctx context.Context, profileID string, orderedIDs []string) error
}

func (m *pageRepoMock) Create(ctx context.Context, page *domain.Page) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, page)
}

func (m *pageRepoMock) Update(ctx context.Context, page *domain.Page) error {
	if m.updateFunc == nil {
		return nil
	}
	return m.updateFunc(ctx, page)
}

func (m *pageRepoMock) Delete(ctx context.Context, id string) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, id)
}

func (m *pageRepoMock) GetByID(ctx context.Context, id string) (*domain.Page, error) {
	if m.getByIDFunc == nil {
		return nil, pgx.ErrNoRows
	}
	return m.getByIDFunc(ctx, id)
}

func (m *pageRepoMock) ListByProfile(ctx context.Context, profileID string, publishedOnly bool) ([]domain.Page, error) {
	if m.listByProfileFunc == nil {
		return nil, nil
	}
	return m.listByProfileFunc(ctx, profileID, publishedOnly)
}

func (m *pageRepoMock) Reorder(ctx context.Context, profileID string, orderedIDs []string) error {
	if m.reorderFunc == nil {
		return nil
	}
	return m.reorderFunc(ctx, profileID, orderedIDs)
}

type socialLinkRepoMock struct {
	listByProfileFunc func(ctx context.Context, profileID string) ([]domain.SocialLink, error)
	replaceAllFunc    func(ctx context.Context, profileID string, links []domain.SocialLink) error
}

func (m *socialLinkRepoMock) ListByProfile(ctx context.Context, profileID string) ([]domain.SocialLink, error) {
	if m.listByProfileFunc == nil {
		return nil, nil
	}
	return m.listByProfileFunc(ctx, profileID)
}

func (m *socialLinkRepoMock) ReplaceAll(ctx context.Context, profileID string, links []domain.SocialLink) error {
	if m.replaceAllFunc == nil {
		return nil
	}
	return m.replaceAllFunc(ctx, profileID, links)
}
