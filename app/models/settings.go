package models

// Area names a floor section tables belong to
type Area string

// Table represents a physical table. The geometry fields exist only so the
// UI can lay out the floor plan; the engine keys everything on (Number, Area).
type Table struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Area   Area   `json:"area"`
	Shape  string `json:"shape"` // "square", "circle", "rectangle", "bar", "fixture"
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RestaurantSettings holds the business details printed on receipts
type RestaurantSettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Footer  string `json:"footer"`
}
