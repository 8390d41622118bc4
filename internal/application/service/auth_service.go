package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
	"github.com/sangkips/kasirpos/pkg/oauth"
	"github.com/sangkips/kasirpos/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	directory   repository.UserDirectory
	sessionRepo repository.SessionRepository
	jwtManager  *utils.JWTManager
	resolver    *RoleResolver
	socials     *oauth.Registry
}

// NewAuthService creates a new auth service
func NewAuthService(
	directory repository.UserDirectory,
	sessionRepo repository.SessionRepository,
	jwtManager *utils.JWTManager,
	resolver *RoleResolver,
	socials *oauth.Registry,
) *AuthService {
	return &AuthService{
		directory:   directory,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		resolver:    resolver,
		socials:     socials,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents an established session
type LoginOutput struct {
	User  *entity.User
	Token string
}

// Login authenticates the operator against the user directory, resolves
// the role from identity, and establishes a session: a token+profile
// pair cached locally.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Username) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "Username is required"})
	}
	if input.Password == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	user, token, err := s.directory.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	user.Role = s.resolver.Resolve(user.Email)
	return s.establishSession(ctx, user, token)
}

// SocialLogin authenticates via a third-party identity provider token.
// Social identities resolve through the same role mapping as passwords;
// accounts unknown to the mapping get the default role.
func (s *AuthService) SocialLogin(ctx context.Context, provider, token string) (*LoginOutput, error) {
	if token == "" {
		return nil, apperror.NewBadRequestError("Token is required")
	}

	verifier, err := s.socials.Lookup(provider)
	if err != nil {
		return nil, apperror.NewBadRequestError("Unknown provider")
	}

	info, err := verifier.VerifyToken(ctx, token)
	if err != nil {
		if err == oauth.ErrTokenRejected {
			return nil, apperror.ErrInvalidToken
		}
		log.Printf("social login (%s) failed: %v", provider, err)
		return nil, apperror.ErrDirectoryOffline
	}

	username := provider + "_user"
	if at := strings.Index(info.Email, "@"); at > 0 {
		username = info.Email[:at]
	}

	user := &entity.User{
		ID:       info.ID,
		Username: username,
		Name:     info.Name,
		Email:    info.Email,
		Avatar:   info.Picture,
		Role:     s.resolver.Resolve(info.Email),
	}
	return s.establishSession(ctx, user, "")
}

// establishSession mints a token when the directory did not supply one
// and persists the token+profile pair in the local cache.
func (s *AuthService) establishSession(ctx context.Context, user *entity.User, token string) (*LoginOutput, error) {
	if token == "" {
		minted, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role.String())
		if err != nil {
			return nil, err
		}
		token = minted
	}

	profile, err := user.MarshalProfile()
	if err != nil {
		return nil, err
	}

	record := &entity.SessionRecord{
		Token:     token,
		UserJSON:  profile,
		ExpiresAt: time.Now().Add(s.jwtManager.Expiry()),
	}
	if err := s.sessionRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return &LoginOutput{User: user.Profile(), Token: token}, nil
}

// Verify restores the session behind a bearer token. A missing or
// expired cache entry forces re-authentication; a directory rejection
// clears the cache entry before failing.
func (s *AuthService) Verify(ctx context.Context, token string) (*entity.User, error) {
	record, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.ErrInvalidToken
	}
	if record.IsExpired() {
		if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			log.Printf("failed to drop expired session: %v", err)
		}
		return nil, apperror.ErrTokenExpired
	}

	cached, err := record.User()
	if err != nil {
		return nil, err
	}

	user, err := s.directory.Verify(ctx, token, cached)
	if err != nil {
		if appErr := apperror.GetAppError(err); appErr.Code == 401 || appErr.Code == 403 {
			if derr := s.sessionRepo.DeleteByToken(ctx, token); derr != nil {
				log.Printf("failed to clear rejected session: %v", derr)
			}
		}
		return nil, err
	}

	user.Role = s.resolver.Resolve(user.Email)
	return user.Profile(), nil
}

// Logout clears the session and the local cache. The backend notify is
// best effort and never blocks the local logout.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return err
	}
	if err := s.directory.Logout(ctx, token); err != nil {
		log.Printf("logout notify failed: %v", err)
	}
	return nil
}
