package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"RestoPos/app/models"
	"RestoPos/app/store"
)

// AdminService covers the manager/admin maintenance commands: staff, menu,
// categories, settings, role PINs, and the language preference. These are
// straight snapshot commits; the interesting invariants all live in the
// order/shift services.
type AdminService struct {
	store *store.Store
	log   zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(st *store.Store, logger zerolog.Logger) *AdminService {
	return &AdminService{
		store: st,
		log:   logger.With().Str("service", "admin").Logger(),
	}
}

// SaveWaiter creates or updates a staff member
func (s *AdminService) SaveWaiter(waiter models.Waiter) ([]models.Waiter, error) {
	if waiter.ID == "" || waiter.Name == "" {
		return nil, fmt.Errorf("%w: waiter id and name are required", ErrValidation)
	}
	if len(waiter.PIN) != 4 {
		return nil, fmt.Errorf("%w: PIN must be 4 digits", ErrValidation)
	}

	waiters := append([]models.Waiter{}, s.store.Waiters.Get()...)
	replaced := false
	for i := range waiters {
		if waiters[i].ID == waiter.ID {
			waiters[i] = waiter
			replaced = true
			break
		}
	}
	if !replaced {
		waiters = append(waiters, waiter)
	}
	if err := s.store.Waiters.Commit(waiters); err != nil {
		return nil, err
	}
	s.log.Info().Str("waiter", waiter.ID).Bool("new", !replaced).Msg("waiter saved")
	return waiters, nil
}

// DeleteWaiter removes a staff member
func (s *AdminService) DeleteWaiter(waiterID string) ([]models.Waiter, error) {
	waiters := s.store.Waiters.Get()
	remaining := make([]models.Waiter, 0, len(waiters))
	for _, w := range waiters {
		if w.ID != waiterID {
			remaining = append(remaining, w)
		}
	}
	if len(remaining) == len(waiters) {
		return nil, fmt.Errorf("%w: waiter %q", ErrReference, waiterID)
	}
	if err := s.store.Waiters.Commit(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// SaveMenuItem creates or updates a menu item
func (s *AdminService) SaveMenuItem(item models.MenuItem) ([]models.MenuItem, error) {
	if item.ID == "" || item.Name == "" {
		return nil, fmt.Errorf("%w: menu item id and name are required", ErrValidation)
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	items := append([]models.MenuItem{}, s.store.MenuItems.Get()...)
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if err := s.store.MenuItems.Commit(items); err != nil {
		return nil, err
	}
	s.log.Info().Str("menu_item", item.ID).Msg("menu item saved")
	return items, nil
}

// DeleteMenuItem removes a menu item
func (s *AdminService) DeleteMenuItem(itemID string) ([]models.MenuItem, error) {
	items := s.store.MenuItems.Get()
	remaining := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			remaining = append(remaining, it)
		}
	}
	if len(remaining) == len(items) {
		return nil, fmt.Errorf("%w: menu item %q", ErrReference, itemID)
	}
	if err := s.store.MenuItems.Commit(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// SaveCategory creates or updates a menu category
func (s *AdminService) SaveCategory(category models.Category) ([]models.Category, error) {
	if category.ID == "" || category.Name == "" {
		return nil, fmt.Errorf("%w: category id and name are required", ErrValidation)
	}
	categories := append([]models.Category{}, s.store.Categories.Get()...)
	replaced := false
	for i := range categories {
		if categories[i].ID == category.ID {
			categories[i] = category
			replaced = true
			break
		}
	}
	if !replaced {
		categories = append(categories, category)
	}
	if err := s.store.Categories.Commit(categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory removes a menu category
func (s *AdminService) DeleteCategory(categoryID string) ([]models.Category, error) {
	categories := s.store.Categories.Get()
	remaining := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID != categoryID {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(categories) {
		return nil, fmt.Errorf("%w: category %q", ErrReference, categoryID)
	}
	if err := s.store.Categories.Commit(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// UpdateSettings replaces the restaurant settings
func (s *AdminService) UpdateSettings(settings models.RestaurantSettings) error {
	if settings.Name == "" {
		return fmt.Errorf("%w: restaurant name is required", ErrValidation)
	}
	return s.store.Settings.Commit(settings)
}

// SetPin replaces the override PIN for a role
func (s *AdminService) SetPin(role models.UserRole, pin string) error {
	if role != models.RoleManager && role != models.RoleAdmin {
		return fmt.Errorf("%w: only MANAGER and ADMIN override PINs exist", ErrValidation)
	}
	if len(pin) != 4 {
		return fmt.Errorf("%w: PIN must be 4 digits", ErrValidation)
	}
	pins := map[models.UserRole]string{}
	for k, v := range s.store.Pins.Get() {
		pins[k] = v
	}
	pins[role] = pin
	s.log.Info().Str("role", string(role)).Msg("override PIN changed")
	return s.store.Pins.Commit(pins)
}

// SetLanguage stores the UI language preference
func (s *AdminService) SetLanguage(lang string) error {
	if lang == "" {
		return fmt.Errorf("%w: language is required", ErrValidation)
	}
	return s.store.Language.Commit(lang)
}
