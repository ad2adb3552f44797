package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemes_ReturnsCopy(t *testing.T) {
	first := Schemes()
	require.NotEmpty(t, first)

	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", Schemes()[0].Name)
}

func TestGuidanceTips_FilterByCategory(t *testing.T) {
	all := GuidanceTips("")
	require.NotEmpty(t, all)

	marketing := GuidanceTips("Marketing")
	require.NotEmpty(t, marketing)
	for _, tip := range marketing {
		assert.Equal(t, "Marketing", tip.Category)
	}
	assert.Less(t, len(marketing), len(all))
}

func TestGuidanceTips_UnknownCategoryIsEmpty(t *testing.T) {
	assert.Empty(t, GuidanceTips("Astrology"))
}

func TestGuidanceCategories_DistinctInOrder(t *testing.T) {
	categories := GuidanceCategories()

	assert.Equal(t, []string{"Getting Started", "Marketing", "Finance", "Growth"}, categories)
}
