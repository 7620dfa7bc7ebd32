package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/security"
	"github.com/rs/zerolog/log"
)

// SlotRepository defines the interface for the persisted identity slot
type SlotRepository interface {
	Save(ctx context.Context, identity *domain.Identity) error
	Load(ctx context.Context) (*domain.Identity, error)
	Clear(ctx context.Context) error
}

// SessionService holds the single authenticated identity. Login overwrites
// it, logout clears it; there is never more than one.
type SessionService struct {
	mu         sync.RWMutex
	slot       SlotRepository
	jwtManager *security.JWTManager
	current    *domain.Identity
}

// NewSessionService creates a new session service
func NewSessionService(slot SlotRepository, jwtManager *security.JWTManager) *SessionService {
	return &SessionService{
		slot:       slot,
		jwtManager: jwtManager,
	}
}

// Login fabricates an identity from a demo role. Display name and
// organization come from the canonical role profile table; an unknown role
// falls through to the default pair rather than failing. The identity is
// written to the persisted slot and replaces any prior session.
func (s *SessionService) Login(ctx context.Context, input domain.LoginInput) (*domain.Identity, *domain.TokenPair, error) {
	profile := domain.ProfileForRole(input.Role)

	identity := &domain.Identity{
		Email:        input.Email,
		Role:         input.Role,
		DisplayName:  profile.DisplayName,
		Organization: profile.Organization,
		LoggedInAt:   time.Now(),
	}

	if err := s.slot.Save(ctx, identity); err != nil {
		return nil, nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	accessToken, refreshToken, expiresIn, err := s.jwtManager.GenerateTokenPair(identity.Email, identity.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	log.Info().Str("role", identity.Role).Str("email", identity.Email).Msg("demo login")

	tokens := &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}
	return identity, tokens, nil
}

// Logout clears the in-memory identity and the persisted slot. Safe to call
// with no active session.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	return nil
}

// Restore rehydrates the identity from the persisted slot at startup. A
// missing or corrupt slot yields no identity, never an error surfaced to
// the user; the slot store discards corrupt payloads itself.
func (s *SessionService) Restore(ctx context.Context) (*domain.Identity, error) {
	identity, err := s.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session slot: %w", err)
	}
	if identity == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	log.Info().Str("email", identity.Email).Msg("session restored from slot")
	return identity, nil
}

// Refresh rotates the token pair for the active session.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	email, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	identity := s.Current()
	if identity == nil || identity.Email != email {
		return nil, errors.New("no matching session")
	}

	accessToken, newRefresh, expiresIn, err := s.jwtManager.GenerateTokenPair(identity.Email, identity.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    expiresIn,
	}, nil
}

// Current returns a copy of the active identity, or nil when logged out.
func (s *SessionService) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// IsAuthenticated reports whether an identity is present.
func (s *SessionService) IsAuthenticated() bool {
	return s.Current() != nil
}
