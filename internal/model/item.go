package model

const (
	// ItemShield suppresses the next missed-deadline penalty. One shield
	// covers every quest caught in the same punishment sweep.
	ItemShield = "shield"
	// ItemPotion doubles the XP of the next successful check-in.
	ItemPotion = "potion"
)

// StoreItem is a purchasable consumable. Prices are in XP.
type StoreItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Icon  string `json:"icon"`
}

// StoreCatalog is the fixed set of items the store sells.
var StoreCatalog = []StoreItem{
	{ID: ItemShield, Name: "Streak Shield", Price: 200, Icon: "snowflake"},
	{ID: ItemPotion, Name: "Focus Potion", Price: 150, Icon: "bottle-tonic"},
}

// CatalogItem looks up a store item by id.
func CatalogItem(itemID string) (StoreItem, bool) {
	for _, item := range StoreCatalog {
		if item.ID == itemID {
			return item, true
		}
	}
	return StoreItem{}, false
}
