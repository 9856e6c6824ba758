package models

// CatalogService is a static catalog entry for an add-on service
// (decoration, photography, entertainment, extras).
type CatalogService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// WeddingPackage bundles venue add-ons at a package price.
type WeddingPackage struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	GuestLimit int      `json:"guestLimit"`
	Inclusions []string `json:"inclusions"`
}
