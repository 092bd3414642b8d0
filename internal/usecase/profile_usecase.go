package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the onboarding or edit form for a user's
// astrological profile. BirthTime is nil when the user does not know it.
type UpdateProfileInput struct {
	FullName  string
	BirthDate time.Time
	BirthTime *string
	Place     string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// ProfileUsecase manages the astrological profile attached to an account.
// Saving birth data recomputes the derived signs.
type ProfileUsecase interface {
	// GetProfile returns the user's profile, or ErrProfileIncomplete when
	// onboarding has not finished.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile stores birth data and recomputes sun, moon and rising signs.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
