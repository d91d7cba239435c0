package models

// CatalogItem is an entry of the fixed pre-order catalog. Pre-order totals are
// computed against this static list, not against the menus table, so a menu
// edit never changes the price of an order already on screen.
type CatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

var preOrderCatalog = []CatalogItem{
	{ID: "1", Name: "Spaghetti Carbonara", Price: 18, Category: "Italian"},
	{ID: "2", Name: "Margherita Pizza", Price: 16, Category: "Italian"},
	{ID: "3", Name: "Chicken Biryani", Price: 15, Category: "Pakistani"},
	{ID: "4", Name: "Seekh Kabab", Price: 14, Category: "Pakistani"},
	{ID: "5", Name: "Dim Sum Platter", Price: 16, Category: "Chinese"},
	{ID: "6", Name: "Kung Pao Chicken", Price: 17, Category: "Chinese"},
}

// PreOrderCatalog returns a copy of the static catalog.
func PreOrderCatalog() []CatalogItem {
	items := make([]CatalogItem, len(preOrderCatalog))
	copy(items, preOrderCatalog)
	return items
}
