package engine

import (
	"github.com/focusquest/focusquest/internal/model"
)

// consumeItem removes one instance of itemID from the inventory multiset.
// It reports whether an instance was found and returns a new slice either way.
func consumeItem(inventory []string, itemID string) ([]string, bool) {
	for i, id := range inventory {
		if id == itemID {
			out := append([]string(nil), inventory[:i]...)
			return append(out, inventory[i+1:]...), true
		}
	}
	return append([]string(nil), inventory...), false
}

// tryConsumePotion removes one focus potion if present. The caller doubles
// the pending XP delta when consumed.
func tryConsumePotion(inventory []string) ([]string, bool) {
	return consumeItem(inventory, model.ItemPotion)
}

// tryConsumeShield removes one streak shield if present. Used only by the
// punishment sweep; one shield covers the whole sweep batch.
func tryConsumeShield(inventory []string) ([]string, bool) {
	return consumeItem(inventory, model.ItemShield)
}

// purchase debits the catalog price and adds the item to the inventory.
// There is no stacking limit at this level.
func purchase(snap Snapshot, item model.StoreItem) (Snapshot, error) {
	if snap.Stats.XP < item.Price {
		return snap, ErrInsufficientFunds
	}

	snap.Stats = Debit(snap.Stats, item.Price)
	snap.Inventory = append(snap.Inventory, item.ID)
	return snap, nil
}
