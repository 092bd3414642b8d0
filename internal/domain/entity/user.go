// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries only identity information; astrological data lives on the profile.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	Name      string    // The user's display name.
	Profile   *Profile  // The astrological profile. Nil until onboarding completes.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the astrological profile of a user: birth data and the
// zodiac signs derived from it.
type Profile struct {
	UserID             uuid.UUID    // Foreign key linking this profile to its User.
	FullName           string       // The name shown on charts and reports.
	Birth              BirthDetails // Birth date, time and place.
	SunSign            string       // Derived sun sign, recomputed whenever birth data changes.
	MoonSign           string       // Derived moon sign (rashi).
	RisingSign         string       // Derived ascendant (lagna). Empty when birth time is unknown.
	SubscriptionExpiry *time.Time   // End of the active subscription, nil for free accounts.
	UpdatedAt          time.Time
}

// Complete reports whether the profile carries enough data to compute charts.
// A profile without a birth place cannot be completed.
func (p *Profile) Complete() bool {
	if p == nil {
		return false
	}

	return p.FullName != "" && !p.Birth.Date.IsZero() && p.Birth.Place != ""
}

// Subscribed reports whether a paid subscription is active at the given time.
func (p *Profile) Subscribed(now time.Time) bool {
	return p != nil && p.SubscriptionExpiry != nil && p.SubscriptionExpiry.After(now)
}
