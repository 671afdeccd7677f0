package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/repository"
	"github.com/lumalink/profile-service/pkg/util"
)

// PageService manages the pages composing a profile. Every mutation is
// ownership-checked against the caller's profile.
type PageService struct {
	pages    repository.PageRepository
	profiles *ProfileService
}

// NewPageService builds the service.
func NewPageService(pages repository.PageRepository, profiles *ProfileService) *PageService {
	return &PageService{pages: pages, profiles: profiles}
}

// PageInput carries owner-editable page fields.
type PageInput struct {
	Type      domain.PageType
	Slug      string
	Title     string
	Content   json.RawMessage
	Published bool
}

func (in PageInput) validate() error {
	if in.Slug == "" || in.Title == "" {
		return util.NewValidationError("slug and title required", nil)
	}
	if len(in.Content) > 0 && !json.Valid(in.Content) {
		return util.NewValidationError("content must be valid JSON", nil)
	}
	return nil
}

// Create adds a page to the caller's profile.
func (s *PageService) Create(ctx context.Context, user *domain.User, input PageInput) (*domain.Page, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetOwn(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.pages.ListByProfile(ctx, profile.ID, false)
	if err != nil {
		return nil, err
	}

	page := &domain.Page{
		ProfileID: profile.ID,
		Type:      input.Type,
		Slug:      input.Slug,
		Title:     input.Title,
		Content:   input.Content,
		Position:  len(existing),
		Published: input.Published,
	}
	if err := s.pages.Create(ctx, page); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.profiles.InvalidatePublic(ctx, user)
	return page, nil
}

// Update edits a page the caller owns.
func (s *PageService) Update(ctx context.Context, user *domain.User, pageID string, input PageInput) (*domain.Page, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	page, err := s.getOwned(ctx, user, pageID)
	if err != nil {
		return nil, err
	}

	page.Type = input.Type
	page.Slug = input.Slug
	page.Title = input.Title
	page.Content = input.Content
	page.Published = input.Published
	if err := s.pages.Update(ctx, page); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.profiles.InvalidatePublic(ctx, user)
	return page, nil
}

// Delete removes a page the caller owns.
func (s *PageService) Delete(ctx context.Context, user *domain.User, pageID string) error {
	page, err := s.getOwned(ctx, user, pageID)
	if err != nil {
		return err
	}
	if err := s.pages.Delete(ctx, page.ID); err != nil {
		return err
	}
	s.profiles.InvalidatePublic(ctx, user)
	return nil
}

// List returns all pages of the caller's profile, drafts included.
func (s *PageService) List(ctx context.Context, user *domain.User) ([]domain.Page, error) {
	profile, err := s.profiles.GetOwn(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.pages.ListByProfile(ctx, profile.ID, false)
}

// Reorder applies the submitted ordering to the caller's pages.
func (s *PageService) Reorder(ctx context.Context, user *domain.User, orderedIDs []string) error {
	profile, err := s.profiles.GetOwn(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := s.pages.Reorder(ctx, profile.ID, orderedIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotPageOwner
		}
		return err
	}
	s.profiles.InvalidatePublic(ctx, user)
	return nil
}

func (s *PageService) getOwned(ctx context.Context, user *domain.User, pageID string) (*domain.Page, error) {
	profile, err := s.profiles.GetOwn(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	page, err := s.pages.GetByID(ctx, pageID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("page", nil)
		}
		return nil, err
	}
	if page.ProfileID != profile.ID {
		return nil, ErrNotPageOwner
	}
	return page, nil
}
