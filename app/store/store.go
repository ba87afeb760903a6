package store

import (
	"RestoPos/app/database"
	"RestoPos/app/models"
)

// Snapshot keys. These predate this implementation and are kept stable so
// existing data files keep loading.
const (
	KeyLanguage     = "pos-lang"
	KeyWaiters      = "pos-waiters"
	KeyCategories   = "pos-categories"
	KeyMenuItems    = "pos-menu-items"
	KeyInventory    = "pos-inventory"
	KeyOrders       = "pos-orders"
	KeyHeldOrders   = "pos-held-orders"
	KeyTransactions = "pos-transactions"
	KeyShifts       = "pos-shifts"
	KeyTables       = "pos-tables"
	KeySettings     = "pos-settings"
	KeyPins         = "pos-pins"
)

// Collection is one snapshotted record set. Reads come from memory; Commit
// replaces the in-memory value after persisting the whole collection under
// its key.
type Collection[T any] struct {
	key   string
	db    *database.SnapshotDB
	value T
}

func openCollection[T any](db *database.SnapshotDB, key string, seed T) (*Collection[T], error) {
	c := &Collection[T]{key: key, db: db, value: seed}
	found, err := db.Load(key, &c.value)
	if err != nil {
		return nil, err
	}
	if !found {
		c.value = seed
	}
	return c, nil
}

// Get returns the current value of the collection
func (c *Collection[T]) Get() T {
	return c.value
}

// Commit persists the new value and publishes it
func (c *Collection[T]) Commit(value T) error {
	if err := c.db.Save(c.key, value); err != nil {
		return err
	}
	c.value = value
	return nil
}

// Store owns every persisted record set of the engine. The UI layer only
// ever reads through the collections and mutates through service commands.
type Store struct {
	db *database.SnapshotDB

	Language     *Collection[string]
	Waiters      *Collection[[]models.Waiter]
	Categories   *Collection[[]models.Category]
	MenuItems    *Collection[[]models.MenuItem]
	Inventory    *Collection[[]models.InventoryItem]
	Orders       *Collection[[]models.Order]
	HeldOrders   *Collection[[]models.HeldOrder]
	Transactions *Collection[[]models.Transaction]
	Shifts       *Collection[[]models.ShiftReport]
	Tables       *Collection[[]models.Table]
	Settings     *Collection[models.RestaurantSettings]
	Pins         *Collection[map[models.UserRole]string]
}

// Open loads every collection from the snapshot database, seeding defaults
// for keys that have never been written.
func Open(db *database.SnapshotDB) (*Store, error) {
	s := &Store{db: db}

	var err error
	if s.Language, err = openCollection(db, KeyLanguage, DefaultLanguage); err != nil {
		return nil, err
	}
	if s.Waiters, err = openCollection(db, KeyWaiters, DefaultWaiters()); err != nil {
		return nil, err
	}
	if s.Categories, err = openCollection(db, KeyCategories, DefaultCategories()); err != nil {
		return nil, err
	}
	if s.MenuItems, err = openCollection(db, KeyMenuItems, DefaultMenuItems()); err != nil {
		return nil, err
	}
	if s.Inventory, err = openCollection(db, KeyInventory, DefaultInventory()); err != nil {
		return nil, err
	}
	if s.Orders, err = openCollection(db, KeyOrders, []models.Order{}); err != nil {
		return nil, err
	}
	if s.HeldOrders, err = openCollection(db, KeyHeldOrders, []models.HeldOrder{}); err != nil {
		return nil, err
	}
	if s.Transactions, err = openCollection(db, KeyTransactions, []models.Transaction{}); err != nil {
		return nil, err
	}
	if s.Shifts, err = openCollection(db, KeyShifts, []models.ShiftReport{}); err != nil {
		return nil, err
	}
	if s.Tables, err = openCollection(db, KeyTables, DefaultTables()); err != nil {
		return nil, err
	}
	if s.Settings, err = openCollection(db, KeySettings, DefaultSettings()); err != nil {
		return nil, err
	}
	if s.Pins, err = openCollection(db, KeyPins, DefaultPins()); err != nil {
		return nil, err
	}

	return s, nil
}

// CommitOrdersAndInventory persists both collections in one transaction and
// publishes them together. Submit's inventory decrement and order upsert go
// through here so neither is ever visible without the other.
func (s *Store) CommitOrdersAndInventory(orders []models.Order, inventory []models.InventoryItem) error {
	err := s.db.SaveAll(map[string]interface{}{
		KeyOrders:    orders,
		KeyInventory: inventory,
	})
	if err != nil {
		return err
	}
	s.Orders.value = orders
	s.Inventory.value = inventory
	return nil
}
