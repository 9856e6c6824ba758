package catalog

import "eventease/models"

// Static service catalogs. These are configuration data, not persisted
// records; listings filter on exact category match where "all" or an empty
// category returns everything.

var decorationServices = []models.CatalogService{
	{ID: "dec-001", Name: "Floral Mandap", Category: "traditional", Description: "Fresh-flower mandap with drapes and stage backdrop", Price: 45000},
	{ID: "dec-002", Name: "Crystal Theme", Category: "modern", Description: "Crystal chandeliers, LED walls and mirror centerpieces", Price: 68000},
	{ID: "dec-003", Name: "Rustic Garden", Category: "outdoor", Description: "Fairy lights, wooden arches and potted greens", Price: 38000},
	{ID: "dec-004", Name: "Royal Heritage", Category: "traditional", Description: "Velvet drapes, brass urlis and marigold strings", Price: 72000},
	{ID: "dec-005", Name: "Minimal Pastel", Category: "modern", Description: "Pastel balloons, sheer drapes and acrylic signage", Price: 29000},
}

var photographyServices = []models.CatalogService{
	{ID: "pho-001", Name: "Candid Duo", Category: "candid", Description: "Two candid photographers for the full event day", Price: 55000},
	{ID: "pho-002", Name: "Cinematic Film", Category: "film", Description: "4K highlight film with drone coverage", Price: 85000},
	{ID: "pho-003", Name: "Classic Coverage", Category: "traditional", Description: "Traditional stills with same-day album", Price: 35000},
	{ID: "pho-004", Name: "Pre-Event Shoot", Category: "candid", Description: "Half-day outdoor couple shoot with edits", Price: 25000},
}

var entertainmentServices = []models.CatalogService{
	{ID: "ent-001", Name: "Live Band", Category: "music", Description: "Five-piece live band, two 45-minute sets", Price: 60000},
	{ID: "ent-002", Name: "DJ Night", Category: "music", Description: "DJ with sound rig and dance floor lighting", Price: 40000},
	{ID: "ent-003", Name: "Stand-up Set", Category: "comedy", Description: "30-minute clean stand-up comedy set", Price: 30000},
	{ID: "ent-004", Name: "Folk Dance Troupe", Category: "dance", Description: "Regional folk performance, eight dancers", Price: 45000},
}

var extraServices = []models.CatalogService{
	{ID: "ext-001", Name: "Valet Parking", Category: "logistics", Description: "Valet team for up to 150 cars", Price: 18000},
	{ID: "ext-002", Name: "Welcome Drinks", Category: "catering", Description: "Mocktail counter for up to 300 guests", Price: 22000},
	{ID: "ext-003", Name: "Fireworks Finale", Category: "spectacle", Description: "Five-minute choreographed fireworks display", Price: 50000},
	{ID: "ext-004", Name: "Guest Concierge", Category: "logistics", Description: "Dedicated desk for guest check-in and queries", Price: 12000},
}

var weddingPackages = []models.WeddingPackage{
	{ID: "pkg-001", Name: "Silver Celebration", Category: "silver", Price: 250000, GuestLimit: 200, Inclusions: []string{"Venue decor", "Classic photography", "Buffet for 200"}},
	{ID: "pkg-002", Name: "Gold Gala", Category: "gold", Price: 450000, GuestLimit: 350, Inclusions: []string{"Theme decor", "Candid photography", "Live band", "Buffet for 350"}},
	{ID: "pkg-003", Name: "Platinum Royale", Category: "platinum", Price: 800000, GuestLimit: 500, Inclusions: []string{"Royal decor", "Cinematic film", "DJ night", "Fireworks", "Buffet for 500"}},
}

func filterServices(list []models.CatalogService, category string) []models.CatalogService {
	if category == "" || category == "all" {
		return list
	}
	out := make([]models.CatalogService, 0, len(list))
	for _, svc := range list {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// Decoration returns decoration services, optionally filtered by category.
func Decoration(category string) []models.CatalogService {
	return filterServices(decorationServices, category)
}

// Photography returns photography services, optionally filtered by category.
func Photography(category string) []models.CatalogService {
	return filterServices(photographyServices, category)
}

// Entertainment returns entertainment services, optionally filtered by category.
func Entertainment(category string) []models.CatalogService {
	return filterServices(entertainmentServices, category)
}

// Extras returns add-on services, optionally filtered by category.
func Extras(category string) []models.CatalogService {
	return filterServices(extraServices, category)
}

// Packages returns wedding packages, optionally filtered by category.
func Packages(category string) []models.WeddingPackage {
	if category == "" || category == "all" {
		return weddingPackages
	}
	out := make([]models.WeddingPackage, 0, len(weddingPackages))
	for _, pkg := range weddingPackages {
		if pkg.Category == category {
			out = append(out, pkg)
		}
	}
	return out
}
