package database

import (
	"gorm.io/gorm"

	"github.com/adnanjillani/zaviya/models"
)

// The fixed menu. ReseedMenu always rebuilds the table from this list.
var menuItems = []models.Menu{
	{Name: "Spaghetti Carbonara", Price: 18, Image: "spagheti.jpg", Category: "italian", Description: "Classic Italian pasta with creamy sauce and bacon."},
	{Name: "Margherita Pizza", Price: 16, Image: "margherita.jpg", Category: "italian", Description: "Traditional pizza with tomatoes, mozzarella, and basil."},
	{Name: "Risotto ai Funghi", Price: 20, Image: "risotto.jpg", Category: "italian", Description: "Creamy mushroom risotto with parmesan cheese."},
	{Name: "Chicken Biryani", Price: 15, Image: "pakistani1.jpg", Category: "pakistani", Description: "Aromatic chicken biryani cooked with spices and rice."},
	{Name: "Nihari", Price: 18, Image: "pakistani2.jpg", Category: "pakistani", Description: "Slow-cooked beef stew, rich in flavor and spices."},
	{Name: "Seekh Kabab", Price: 14, Image: "pakistani3.jpg", Category: "pakistani", Description: "Spiced minced meat grilled to perfection."},
	{Name: "Dim Sum Platter", Price: 16, Image: "chinese1.jpg", Category: "chinese", Description: "Variety of steamed dumplings and buns."},
	{Name: "Kung Pao Chicken", Price: 17, Image: "chinese2.jpg", Category: "chinese", Description: "Spicy stir-fried chicken with peanuts and vegetables."},
	{Name: "Peking Duck", Price: 35, Image: "chinese3.jpg", Category: "chinese", Description: "Crispy roasted duck served with pancakes and sauce."},
}

// ReseedMenu deletes every existing menu row and inserts the fixed item list.
// Returns the number of inserted items.
func ReseedMenu(db *gorm.DB) (int, error) {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Menu{}).Error; err != nil {
		return 0, err
	}

	items := make([]models.Menu, len(menuItems))
	copy(items, menuItems)
	if err := db.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}
