package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yogaprasetya/akun-api/internal/domain/entity"
	repo "github.com/yogaprasetya/akun-api/internal/domain/repository"
	"github.com/yogaprasetya/akun-api/pkg/helpers"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("incorrect username or password")
	ErrUnauthorized   = errors.New("could not validate credentials")
	ErrInactive       = errors.New("inactive user")
	ErrEmailTaken     = errors.New("email already registered")
)

// Service composes the password hasher, the token manager, and the user
// store into the authentication flows. One instance lives for the whole
// process; every call is a pure request/response.
type Service struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Tokens: tokens, Logger: logger}
}

// Authenticate looks the user up by exact username and checks the
// password against the stored hash. A missing user and a wrong password
// are distinct failures; the HTTP layer collapses both to 401.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.VerifyPassword(password, u.Password) {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// IssueToken mints a bearer token whose subject is the user's username.
// A zero ttl uses the configured default (30 minutes).
func (s *Service) IssueToken(u *entity.User, ttl time.Duration) (string, time.Time, error) {
	return s.Tokens.Issue(u.Username, ttl)
}

// CurrentUser resolves a bearer token back to its user. Any token
// problem, and a subject that no longer resolves, is ErrUnauthorized;
// a disabled account is ErrInactive.
func (s *Service) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	username, err := s.Tokens.Validate(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if u.Disabled {
		return nil, ErrInactive
	}
	return u, nil
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Alamat   string
	NomorHP  string
}

// Register creates an account, hashing the credential at creation time.
// The pre-check keeps the original "Email already registered" reply; the
// unique index closes the race the pre-check alone would leave open.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    in.Email,
		Username: in.Username,
		Password: hash,
		Alamat:   in.Alamat,
		NomorHP:  in.NomorHP,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateInput carries a partial profile update; nil fields are left as-is.
type UpdateInput struct {
	Email    *string
	Username *string
	Alamat   *string
	NomorHP  *string
}

func (in UpdateInput) Empty() bool {
	return in.Email == nil && in.Username == nil && in.Alamat == nil && in.NomorHP == nil
}

// UpdateUser overwrites the provided subset of fields. The repository
// runs the write in a transaction, so a partial update never applies.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Alamat != nil {
		u.Alamat = *in.Alamat
	}
	if in.NomorHP != nil {
		u.NomorHP = *in.NomorHP
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
