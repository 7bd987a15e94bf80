package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

const bcryptCost = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account. New accounts carry the nurse role and
// disabled status until an administrator promotes or enables them.
func (s *Service) Register(ctx context.Context, name, email, username, password string) (*User, error) {
	if name == "" || email == "" || username == "" || password == "" {
		return nil, apperr.Validation("name, email, username and password are required")
	}

	exists, err := s.repo.ExistsByLogin(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Validation("Username or Email already exists. Please choose a different one.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Store(err)
	}

	u := &User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         RoleNurse,
		Status:       false,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials against the stored hash. An unknown
// account is reported distinctly from a wrong password.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	u, err := s.repo.GetByLogin(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) Update(ctx context.Context, username string, fields UpdateFields) error {
	if fields.Empty() {
		return apperr.Validation("No fields provided for update")
	}
	return s.repo.Update(ctx, username, fields)
}

// ToggleStatus flips the account between enabled and disabled and
// returns the new state.
func (s *Service) ToggleStatus(ctx context.Context, username string) (bool, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	newStatus := !u.Status
	if err := s.repo.SetStatus(ctx, username, newStatus); err != nil {
		return false, err
	}
	return newStatus, nil
}

func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return apperr.Validation("newPassword is required")
	}
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperr.Store(err)
	}
	return s.repo.SetPassword(ctx, username, string(hash))
}

func (s *Service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
