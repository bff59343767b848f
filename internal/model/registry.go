package model

// RegistryStatus marks whether a gift registry item is still available.
type RegistryStatus string

const (
	RegistryAvailable RegistryStatus = "available"
	RegistryPurchased RegistryStatus = "purchased"
)

// RegistryItem is a gift registry entry owned by a wedding. Name is the
// natural key within one wedding's registry.
type RegistryItem struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       uint64         `json:"price"`
	Status      RegistryStatus `json:"status"`
	PurchasedBy string         `json:"purchased_by"`
}
