package domain

import "time"

// Profile is the public-facing presence attached to a user account.
type Profile struct {
	ID          string
	UserID      string
	DisplayName string
	Bio         string
	AvatarURL   *string
	TemplateID  *string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SocialLink is one external link rendered on a profile.
type SocialLink struct {
	ID        string
	ProfileID string
	Platform  string
	URL       string
	Position  int
	CreatedAt time.Time
}
