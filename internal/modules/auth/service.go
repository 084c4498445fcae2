package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/password"
	"tourbook/internal/repository"
)

// LoginCode classifies a detailed login outcome for callers that need more
// than pass/fail; the plain Login entry point collapses everything.
type LoginCode string

const (
	CodeOK              LoginCode = "OK"
	CodeNotFound        LoginCode = "NOT_FOUND"
	CodeInvalidPassword LoginCode = "INVALID_PASSWORD"
	CodeDBError         LoginCode = "DB_ERROR"
)

type jwtService interface {
	GenerateToken(userID int64, username, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies credentials by email or username. Any failure reads as
// invalid credentials; use LoginDetailed to distinguish causes.
func (s *Service) Login(ctx context.Context, identifier, pass string) (*LoginResult, error) {
	result, code := s.LoginDetailed(ctx, identifier, pass)
	if code != CodeOK {
		return nil, ErrInvalidCredentials
	}
	return result, nil
}

// LoginDetailed behaves like Login but reports why it failed. Note that a
// successful login may write: legacy plaintext credentials are transparently
// re-hashed on first use.
func (s *Service) LoginDetailed(ctx context.Context, identifier, pass string) (*LoginResult, LoginCode) {
	user, err := s.users.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, CodeNotFound
		}
		return nil, CodeDBError
	}

	if password.IsHashed(user.PasswordHash) {
		if !password.Verify(user.PasswordHash, pass) {
			return nil, CodeInvalidPassword
		}
	} else {
		// legacy plaintext row: compare directly, then migrate
		if user.PasswordHash != pass {
			return nil, CodeInvalidPassword
		}
		if hash, err := password.Hash(pass); err == nil {
			if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
				// login still succeeds; the next login retries the upgrade
				log.Printf("password rehash failed user_id=%d err=%v", user.ID, err)
			} else {
				log.Printf("legacy password upgraded user_id=%d", user.ID)
				user.PasswordHash = hash
			}
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, CodeDBError
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, CodeOK
}

// GuestSignup registers a customer account. The customers detail row is
// best-effort: the signup stands even if that insert fails.
func (s *Service) GuestSignup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	if err := s.users.CreateCustomerDetail(ctx, user.ID, req.Address); err != nil {
		log.Printf("customer detail bootstrap failed user_id=%d err=%v", user.ID, err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
