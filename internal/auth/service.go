package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked, try again later")
)

type Service struct {
	repo    UserRepository
	lockout *Lockout
}

func NewService(repo UserRepository, lockout *Lockout) *Service {
	return &Service{repo: repo, lockout: lockout}
}

// REGISTER
func (s *Service) Register(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     "OWNER",
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
// The lockout check runs BEFORE password verification, so a locked account
// never leaks whether the password was right.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if s.lockout != nil {
		locked, err := s.lockout.IsLocked(ctx, email)
		if err != nil {
			return nil, err
		}
		if locked {
			return nil, ErrAccountLocked
		}
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		s.recordFailure(ctx, email)
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		s.recordFailure(ctx, email)
		return nil, ErrInvalidCredentials
	}

	if s.lockout != nil {
		_ = s.lockout.Reset(ctx, email)
	}

	return user, nil
}

func (s *Service) recordFailure(ctx context.Context, email string) {
	if s.lockout != nil {
		_ = s.lockout.RecordFailure(ctx, email)
	}
}
