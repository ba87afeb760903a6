package models

// InventoryItem is a stock counter. Quantity is signed: sales keep
// decrementing past zero so an over-sold condition stays visible.
type InventoryItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
}

// LowStock reports whether the item is at or below its threshold
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
