// ABOUTME: Profile persistence over the Blob capability.
// ABOUTME: Stores the UserProfile under the "profile" key and derives Goals.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/nosh/internal/metabolic"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
)

const profileKey = "profile"

// Store persists the single user profile.
type Store struct {
	blob storage.Blob
}

// New creates a profile store over the given blob capability.
func New(blob storage.Blob) *Store {
	return &Store{blob: blob}
}

// Save writes the profile. Basic field validation mirrors onboarding rules.
func (s *Store) Save(ctx context.Context, p *models.UserProfile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("height must be positive")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.blob.Set(ctx, profileKey, string(data))
}

// Load reads the profile. Returns nil with no error when none is saved.
func (s *Store) Load(ctx context.Context) (*models.UserProfile, error) {
	raw, found, err := s.blob.Get(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var p models.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// Goals loads the profile and computes its derived metabolic targets.
// With no saved profile the targets are all zero.
func (s *Store) Goals(ctx context.Context) (models.Goals, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return models.Goals{}, err
	}
	return metabolic.Goals(p), nil
}

// Reset removes the saved profile.
func (s *Store) Reset(ctx context.Context) error {
	return s.blob.Remove(ctx, profileKey)
}
