package store

import "RestoPos/app/models"

// Seed data used when a snapshot key has never been written. A fresh install
// boots with a workable menu, floor plan, and staff list.

const DefaultLanguage = "en"

func DefaultWaiters() []models.Waiter {
	return []models.Waiter{
		{ID: "1", Name: "Nabil", PIN: "1111", Role: models.RoleManager},
		{ID: "2", Name: "Shahid", PIN: "0000", Role: models.RoleManager},
		{ID: "3", Name: "Admin", PIN: "4714", Role: models.RoleAdmin},
	}
}

func DefaultPins() map[models.UserRole]string {
	return map[models.UserRole]string{
		models.RoleManager: "0000",
		models.RoleAdmin:   "4714",
	}
}

func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "cat1", Name: "Appetizers"},
		{ID: "cat2", Name: "Main Courses"},
		{ID: "cat3", Name: "Desserts"},
		{ID: "cat4", Name: "Beverages"},
	}
}

func DefaultInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "inv1", Name: "Burger Patty", Quantity: 100, Unit: "pcs", LowStockThreshold: 20},
		{ID: "inv2", Name: "Pizza Dough", Quantity: 50, Unit: "pcs", LowStockThreshold: 10},
		{ID: "inv3", Name: "Cola Can", Quantity: 200, Unit: "pcs", LowStockThreshold: 50},
		{ID: "inv4", Name: "Coffee Beans", Quantity: 10, Unit: "kg", LowStockThreshold: 2},
		{ID: "inv5", Name: "Pasta", Quantity: 20, Unit: "kg", LowStockThreshold: 5},
		{ID: "inv9", Name: "Bread", Quantity: 40, Unit: "loaves", LowStockThreshold: 10},
		{ID: "inv10", Name: "Chicken Wings", Quantity: 10, Unit: "kg", LowStockThreshold: 3},
	}
}

func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "item4", Name: "Spring Rolls", Price: 8.00, CategoryID: "cat1",
			Ingredients: []string{"Wrapper", "Cabbage", "Carrot"},
			StockItemID: "inv1", StockConsumption: 0.2,
		},
		{
			ID: "item6", Name: "Garlic Bread", Price: 5.50, CategoryID: "cat1",
			Ingredients: []string{"Bread", "Garlic", "Butter"},
			StockItemID: "inv9", StockConsumption: 0.25,
		},
		{
			ID: "item7", Name: "Chicken Wings", Price: 9.00, CategoryID: "cat1",
			Ingredients: []string{"Chicken", "BBQ Sauce"},
			StockItemID: "inv10", StockConsumption: 0.5,
		},
		{
			ID: "item1", Name: "Classic Burger", Price: 12.50, CategoryID: "cat2",
			Ingredients: []string{"Bun", "Patty", "Lettuce", "Tomato", "Onion"},
			Customizations: []models.CustomizationCategory{
				{
					ID: "cust1", Name: "Add Cheese", Type: models.CustomizationMultiple,
					Options: []models.CustomizationOption{
						{ID: "opt1", Name: "Cheddar", PriceModifier: 1.00},
						{ID: "opt2", Name: "Swiss", PriceModifier: 1.50},
					},
				},
				{
					ID: "cust2", Name: "Cooking", Type: models.CustomizationSingle,
					Options: []models.CustomizationOption{
						{ID: "opt3", Name: "Medium Rare", PriceModifier: 0},
						{ID: "opt4", Name: "Medium", PriceModifier: 0},
						{ID: "opt5", Name: "Well Done", PriceModifier: 0},
					},
				},
			},
			StockItemID: "inv1", StockConsumption: 1,
		},
		{
			ID: "item2", Name: "Margherita Pizza", Price: 15.00, CategoryID: "cat2",
			Ingredients: []string{"Dough", "Tomato Sauce", "Cheese", "Basil"},
			StockItemID: "inv2", StockConsumption: 1,
		},
		{
			ID: "item3", Name: "Cola", Price: 2.50, CategoryID: "cat4",
			Ingredients: []string{},
			StockItemID: "inv3", StockConsumption: 1,
		},
	}
}

func DefaultTables() []models.Table {
	return []models.Table{
		{ID: "t1", Number: 1, Area: "Bar", Shape: "square", X: 10, Y: 10, Width: 80, Height: 80},
		{ID: "t2", Number: 2, Area: "Bar", Shape: "square", X: 110, Y: 10, Width: 80, Height: 80},
		{ID: "t3", Number: 3, Area: "Bar", Shape: "circle", X: 210, Y: 10, Width: 80, Height: 80},
		{ID: "t4", Number: 4, Area: "Bar", Shape: "rectangle", X: 10, Y: 110, Width: 160, Height: 80},
		{ID: "t5", Number: 5, Area: "Bar", Shape: "square", X: 210, Y: 110, Width: 80, Height: 80},
		{ID: "t6", Number: 1, Area: "VIP", Shape: "circle", X: 10, Y: 10, Width: 100, Height: 100},
		{ID: "t7", Number: 2, Area: "VIP", Shape: "circle", X: 130, Y: 10, Width: 100, Height: 100},
		{ID: "t8", Number: 1, Area: "Gaming", Shape: "rectangle", X: 10, Y: 10, Width: 160, Height: 80},
	}
}

func DefaultSettings() models.RestaurantSettings {
	return models.RestaurantSettings{
		Name:    "RestoPos",
		Address: "123 Main Street",
		Phone:   "555-0100",
		Footer:  "Thank you for your visit!",
	}
}
