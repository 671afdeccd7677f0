package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lumalink/profile-service/internal/domain"
	"github.com/lumalink/profile-service/internal/events"
	"github.com/lumalink/profile-service/internal/persistence"
	"github.com/lumalink/profile-service/internal/repository"
	"github.com/lumalink/profile-service/pkg/util"
)

// ProfileService manages the owner-facing profile surface and the public
// read path.
type ProfileService struct {
	profiles   repository.ProfileRepository
	pages      repository.PageRepository
	links      repository.SocialLinkRepository
	templates  repository.TemplateRepository
	users      repository.UserRepository
	cache      *persistence.ProfileCache
	dispatcher events.Dispatcher
}

// ProfileDependencies bundles repo requirements for the profile service.
type ProfileDependencies struct {
	ProfileRepo    repository.ProfileRepository
	PageRepo       repository.PageRepository
	SocialLinkRepo repository.SocialLinkRepository
	TemplateRepo   repository.TemplateRepository
	UserRepo       repository.UserRepository
	Cache          *persistence.ProfileCache
	Dispatcher     events.Dispatcher
}

// NewProfileService builds the service.
func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{
		profiles:   deps.ProfileRepo,
		pages:      deps.PageRepo,
		links:      deps.SocialLinkRepo,
		templates:  deps.TemplateRepo,
		users:      deps.UserRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// ProfileInput carries owner-editable profile fields.
type ProfileInput struct {
	DisplayName string
	Bio         string
	AvatarURL   *string
	TemplateID  *string
	Published   bool
}

// Upsert creates or updates the caller's profile. Template selection is
// gated by the caller's subscription tier.
func (s *ProfileService) Upsert(ctx context.Context, user *domain.User, input ProfileInput) (*domain.Profile, error) {
	if input.TemplateID != nil {
		tmpl, err := s.templates.GetByID(ctx, *input.TemplateID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, util.NewNotFound("template", nil)
			}
			return nil, err
		}
		if !user.Tier.Covers(tmpl.MinTier) {
			return nil, ErrTemplateTierLocked
		}
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		wasPublished := profile.Published
		profile.DisplayName = input.DisplayName
		profile.Bio = input.Bio
		profile.AvatarURL = input.AvatarURL
		profile.TemplateID = input.TemplateID
		profile.Published = input.Published
		if err := s.profiles.Update(ctx, profile); err != nil {
			return nil, err
		}
		if !wasPublished && profile.Published {
			s.publish(ctx, events.EventProfilePublished, user.ID, nil)
		}
	case errors.Is(err, pgx.ErrNoRows):
		profile = &domain.Profile{
			UserID:      user.ID,
			DisplayName: input.DisplayName,
			Bio:         input.Bio,
			AvatarURL:   input.AvatarURL,
			TemplateID:  input.TemplateID,
			Published:   input.Published,
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		if profile.Published {
			s.publish(ctx, events.EventProfilePublished, user.ID, nil)
		}
	default:
		return nil, err
	}

	s.invalidate(ctx, user)
	return profile, nil
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("profile", nil)
		}
		return nil, err
	}
	return profile, nil
}

// SocialLinkInput is one link entry in a replace-all submission.
type SocialLinkInput struct {
	Platform string
	URL      string
}

// SetSocialLinks replaces the caller's link set in submission order.
func (s *ProfileService) SetSocialLinks(ctx context.Context, user *domain.User, inputs []SocialLinkInput) ([]domain.SocialLink, error) {
	profile, err := s.GetOwn(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	links := make([]domain.SocialLink, 0, len(inputs))
	for _, in := range inputs {
		if in.Platform == "" || in.URL == "" {
			return nil, util.NewValidationError("platform and url required for every link", nil)
		}
		links = append(links, domain.SocialLink{Platform: in.Platform, URL: in.URL})
	}
	if err := s.links.ReplaceAll(ctx, profile.ID, links); err != nil {
		return nil, err
	}

	s.invalidate(ctx, user)
	return s.links.ListByProfile(ctx, profile.ID)
}

// ListTemplates returns the template catalog.
func (s *ProfileService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.templates.List(ctx)
}

// PublicProfile is the assembled read model served on public URLs.
type PublicProfile struct {
	Username    string              `json:"username"`
	DisplayName string              `json:"display_name"`
	Bio         string              `json:"bio"`
	AvatarURL   *string             `json:"avatar_url,omitempty"`
	TemplateID  *string             `json:"template_id,omitempty"`
	Verified    bool                `json:"verified"`
	Pages       []domain.Page       `json:"pages"`
	SocialLinks []domain.SocialLink `json:"social_links"`
}

// GetPublic assembles the public view for a username. Snapshots are cached
// with a short TTL; cache misses or failures fall through to the database.
func (s *ProfileService) GetPublic(ctx context.Context, username string) (*PublicProfile, error) {
	var cached PublicProfile
	if hit, err := s.cache.Get(ctx, username, &cached); err == nil && hit {
		return &cached, nil
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("profile", nil)
		}
		return nil, err
	}
	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil || !profile.Published {
		if errors.Is(err, pgx.ErrNoRows) || err == nil {
			return nil, util.NewNotFound("profile", nil)
		}
		return nil, err
	}

	pages, err := s.pages.ListByProfile(ctx, profile.ID, true)
	if err != nil {
		return nil, err
	}
	links, err := s.links.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	public := &PublicProfile{
		Username:    username,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
		TemplateID:  profile.TemplateID,
		Verified:    user.HasVerifiedBadge,
		Pages:       pages,
		SocialLinks: links,
	}
	_ = s.cache.Set(ctx, username, public)
	return public, nil
}

// InvalidatePublic drops the cached snapshot for a user, if any.
func (s *ProfileService) InvalidatePublic(ctx context.Context, user *domain.User) {
	s.invalidate(ctx, user)
}

func (s *ProfileService) invalidate(ctx context.Context, user *domain.User) {
	if user.Username != nil {
		_ = s.cache.Invalidate(ctx, *user.Username)
	}
}

func (s *ProfileService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
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
