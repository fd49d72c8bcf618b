package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/platform/auth"
)

type Service struct {
	users  Repository
	issuer *auth.TokenIssuer
}

func NewService(users Repository, issuer *auth.TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &User{
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         "member",
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issue(u)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) UpdateName(ctx context.Context, id uuid.UUID, fullName string) (*User, error) {
	if fullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.FullName = fullName
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, current) {
		return fmt.Errorf("current password is incorrect")
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.users.Update(ctx, u)
}

// Delete removes the account. Profile and conversation rows go with it
// via foreign key cascade.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, password string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return fmt.Errorf("password is incorrect")
	}
	return s.users.Delete(ctx, id)
}

func (s *Service) issue(u *User) (*AuthResponse, error) {
	token, err := s.issuer.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}
