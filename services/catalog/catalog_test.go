package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoration_CategoryFilter(t *testing.T) {
	all := Decoration("")
	assert.Len(t, all, 5)
	assert.Equal(t, all, Decoration("all"))

	traditional := Decoration("traditional")
	require.Len(t, traditional, 2)
	for _, svc := range traditional {
		assert.Equal(t, "traditional", svc.Category)
	}

	assert.Empty(t, Decoration("underwater"))
}

func TestPhotography_CategoryFilter(t *testing.T) {
	candid := Photography("candid")
	require.Len(t, candid, 2)
	for _, svc := range candid {
		assert.Equal(t, "candid", svc.Category)
	}
}

func TestEntertainmentAndExtras(t *testing.T) {
	assert.Len(t, Entertainment("music"), 2)
	assert.Len(t, Entertainment(""), 4)
	assert.Len(t, Extras("logistics"), 2)
	assert.Len(t, Extras("all"), 4)
}

func TestPackages_CategoryFilter(t *testing.T) {
	assert.Len(t, Packages(""), 3)
	assert.Len(t, Packages("all"), 3)

	gold := Packages("gold")
	require.Len(t, gold, 1)
	assert.Equal(t, "Gold Gala", gold[0].Name)

	assert.Empty(t, Packages("diamond"))
}

func TestCatalogEntriesHaveStableIdentity(t *testing.T) {
	seen := make(map[string]bool)
	for _, svc := range Decoration("") {
		assert.False(t, seen[svc.ID], "duplicate catalog id %s", svc.ID)
		seen[svc.ID] = true
		assert.NotEmpty(t, svc.Name)
		assert.Greater(t, svc.Price, 0.0)
	}
}
