package models

// Category groups menu items for display and filtering
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomizationOption is a single selectable option within a customization category
type CustomizationOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

// CustomizationType determines whether one or many options may be selected
type CustomizationType string

const (
	CustomizationSingle   CustomizationType = "single"
	CustomizationMultiple CustomizationType = "multiple"
)

// CustomizationCategory is a group of options attached to a menu item
type CustomizationCategory struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Type    CustomizationType     `json:"type"`
	Options []CustomizationOption `json:"options"`
}

// MenuItem represents a sellable product on the menu
type MenuItem struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Price            float64                 `json:"price"`
	CategoryID       string                  `json:"category_id"`
	ImageURL         string                  `json:"image_url,omitempty"`
	Ingredients      []string                `json:"ingredients"`
	Customizations   []CustomizationCategory `json:"customizations,omitempty"`
	StockItemID      string                  `json:"stock_item_id"`
	StockConsumption float64                 `json:"stock_consumption"`
}

// Selection is the chosen value for one customization category.
// Exactly one of Single or Multi is set, matching the category type.
type Selection struct {
	Single *CustomizationOption  `json:"single,omitempty"`
	Multi  []CustomizationOption `json:"multi,omitempty"`
}

// PriceModifier returns the summed price change of the selected options
func (s Selection) PriceModifier() float64 {
	if s.Single != nil {
		return s.Single.PriceModifier
	}
	var sum float64
	for _, opt := range s.Multi {
		sum += opt.PriceModifier
	}
	return sum
}
