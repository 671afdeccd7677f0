package dto

import (
	"encoding/json"
	"time"

	"github.com/lumalink/profile-service/internal/domain"
)

// ProfileRequest payload for creating or updating the caller's profile.
type ProfileRequest struct {
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	TemplateID  *string `json:"template_id,omitempty"`
	Published   bool    `json:"published"`
}

// ProfileResponse projects a profile.
type ProfileResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	TemplateID  *string   `json:"template_id,omitempty"`
	Published   bool      `json:"published"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProfileResponse projects a domain profile.
func NewProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
		TemplateID:  profile.TemplateID,
		Published:   profile.Published,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// SocialLinkEntry is one link in a replace-all submission or response.
type SocialLinkEntry struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinksRequest payload replacing the full ordered link set.
type SocialLinksRequest struct {
	Links []SocialLinkEntry `json:"links"`
}

// TemplateResponse projects a catalog template.
type TemplateResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	PreviewURL *string                 `json:"preview_url,omitempty"`
	MinTier    domain.SubscriptionTier `json:"min_tier"`
}

// PageRequest payload for page create/update.
type PageRequest struct {
	Type      domain.PageType `json:"type"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content,omitempty"`
	Published bool            `json:"published"`
}

// PageReorderRequest payload applying a full page ordering.
type PageReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// PageResponse projects a page.
type PageResponse struct {
	ID        string          `json:"id"`
	Type      domain.PageType `json:"type"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content,omitempty"`
	Position  int             `json:"position"`
	Published bool            `json:"published"`
}

// NewPageResponse projects a domain page.
func NewPageResponse(page *domain.Page) PageResponse {
	return PageResponse{
		ID:        page.ID,
		Type:      page.Type,
		Slug:      page.Slug,
		Title:     page.Title,
		Content:   page.Content,
		Position:  page.Position,
		Published: page.Published,
	}
}

// NewPageResponseList projects a slice of pages.
func NewPageResponseList(pages []domain.Page) []PageResponse {
	out := make([]PageResponse, 0, len(pages))
	for i := range pages {
		out = append(out, NewPageResponse(&pages[i]))
	}
	return out
}
