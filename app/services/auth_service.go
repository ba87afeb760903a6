package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// AuthService gates waiter login and admin-area access with 4-digit PINs.
// PINs are compared as plaintext against the stored values.
type AuthService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(st *store.Store, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store: st,
		log:   logger.With().Str("service", "auth").Logger(),
	}
}

// SelectWaiter authenticates a waiter by id and PIN
func (s *AuthService) SelectWaiter(waiterID, pin string) (*models.Waiter, error) {
	for _, waiter := range s.store.Waiters.Get() {
		if waiter.ID != waiterID {
			continue
		}
		if waiter.PIN != pin {
			s.log.Warn().Str("waiter", waiterID).Msg("incorrect PIN")
			return nil, fmt.Errorf("%w: incorrect PIN", ErrAuth)
		}
		s.log.Info().Str("waiter", waiterID).Str("name", waiter.Name).Msg("waiter signed in")
		return &waiter, nil
	}
	return nil, fmt.Errorf("%w: waiter %q", ErrReference, waiterID)
}

// AuthorizeOverride checks a PIN against the stored ADMIN and MANAGER
// override PINs and returns the granted role. ADMIN is checked first so a
// shared PIN grants the higher role.
func (s *AuthService) AuthorizeOverride(pin string) (models.UserRole, error) {
	pins := s.store.Pins.Get()
	if stored, ok := pins[models.RoleAdmin]; ok && stored == pin {
		s.log.Info().Msg("admin override granted")
		return models.RoleAdmin, nil
	}
	if stored, ok := pins[models.RoleManager]; ok && stored == pin {
		s.log.Info().Msg("manager override granted")
		return models.RoleManager, nil
	}
	s.log.Warn().Msg("override PIN rejected")
	return "", fmt.Errorf("%w: incorrect PIN", ErrAuth)
}
