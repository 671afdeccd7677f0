package domain

import (
	"encoding/json"
	"time"
)

// PageType enumerates the kinds of pages a profile can be composed of.
type PageType string

const (
	PageTypeHome    PageType = "HOME"
	PageTypeAbout   PageType = "ABOUT"
	PageTypeGallery PageType = "GALLERY"
	PageTypeBooking PageType = "BOOKING"
	PageTypeCustom  PageType = "CUSTOM"
)

// Page is a single section of a public profile. Content is a loosely
// structured document owned by the page editor; the backend stores it
// verbatim and only validates it is well-formed JSON.
type Page struct {
	ID        string
	ProfileID string
	Type      PageType
	Slug      string
	Title     string
	Content   json.RawMessage
	Position  int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
