package team

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Invite a member
// --------------------------------------------------
func (s *Service) Invite(ctx context.Context, restaurantID, email, role string) (*Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if role == "" {
		role = RoleStaff
	}
	if !validRole(role) {
		return nil, errors.New("invalid role")
	}

	member := &Member{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Email:        email,
		Role:         role,
	}

	if err := s.repo.Add(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// --------------------------------------------------
// List members
// --------------------------------------------------
func (s *Service) ListMembers(ctx context.Context, restaurantID string) ([]*Member, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Change a member's role
// --------------------------------------------------
func (s *Service) ChangeRole(ctx context.Context, restaurantID, memberID, role string) error {
	if !validRole(role) {
		return errors.New("invalid role")
	}
	return s.repo.UpdateRole(ctx, restaurantID, memberID, role)
}

// --------------------------------------------------
// Remove a member
// --------------------------------------------------
func (s *Service) Remove(ctx context.Context, restaurantID, memberID string) error {
	return s.repo.Remove(ctx, restaurantID, memberID)
}
