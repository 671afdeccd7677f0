package domain

import "time"

// Template is a catalog entry describing a profile layout. Selection is
// gated by subscription tier.
type Template struct {
	ID         string
	Name       string
	PreviewURL *string
	MinTier    SubscriptionTier
	CreatedAt  time.Time
}
