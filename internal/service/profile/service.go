package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("profile not found")
)

// StatusSaved is the status attached to every persisted profile.
const StatusSaved = "saved"

// RawUserInput is the caller-supplied record fed into the pipeline.
type RawUserInput struct {
	UserID   int64
	Name     string
	Email    string
	Metadata map[string]any
}

// ValidatedUser holds normalized fields that passed validation.
type ValidatedUser struct {
	UserID int64
	Name   string
	Email  string
}

// PersonalInfo is the personal section of a profile.
type PersonalInfo struct {
	FullName     string `json:"full_name"`
	EmailAddress string `json:"email_address"`
	DisplayName  string `json:"display_name"`
}

// Profile represents a formatted user profile.
//
// Metadata is omitted from JSON when nil. A sanitized map that ended up empty
// is still written as {}.
type Profile struct {
	ID           int64          `json:"id"`
	PersonalInfo PersonalInfo   `json:"personal_info"`
	CreatedAt    string         `json:"created_at"`
	Metadata     map[string]any `json:"metadata,omitzero"`
}

// SavedProfile is a Profile plus the outcome of persisting it.
type SavedProfile struct {
	Profile
	SavedTo string `json:"saved_to"`
	Status  string `json:"status"`
}

// Clock returns the current instant.
type Clock func() time.Time

// Store persists formatted profiles.
type Store interface {
	Save(ctx context.Context, p *Profile) (*SavedProfile, error)
	Load(ctx context.Context, userID int64) (*Profile, error)
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for created_at.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Service runs the validate, format, save pipeline against a Store.
type Service struct {
	store Store
	clock Clock
}

// NewService creates a pipeline backed by store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process validates, formats and saves a user record.
// Nothing touches the store unless validation succeeds.
func (s *Service) Process(ctx context.Context, in RawUserInput) (*SavedProfile, error) {
	user, err := Validate(in.UserID, in.Name, in.Email)
	if err != nil {
		return nil, err
	}
	p := Format(user, in.Metadata, s.clock)
	return s.store.Save(ctx, p)
}

// Get returns a previously saved profile.
func (s *Service) Get(ctx context.Context, userID int64) (*Profile, error) {
	return s.store.Load(ctx, userID)
}

// ProcessUserData runs the pipeline with the default file store rooted at
// DefaultRoot and the wall clock.
func ProcessUserData(
	ctx context.Context,
	userID int64,
	name, email string,
	metadata map[string]any,
) (*SavedProfile, error) {
	svc := NewService(NewFileStore(DefaultRoot))
	return svc.Process(ctx, RawUserInput{
		UserID:   userID,
		Name:     name,
		Email:    email,
		Metadata: metadata,
	})
}
