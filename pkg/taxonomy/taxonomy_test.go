package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryKnownThemes(t *testing.T) {
	table := Default()

	require.Equal(t, CategoryEnvironment, table.Category("theme-water-pollution"))
	require.Equal(t, CategoryLabourRights, table.Category("theme-child-labour"))
	require.Equal(t, CategoryFairBusiness, table.Category("theme-corruption"))
	require.Equal(t, CategoryHumanRights, table.Category("theme-land-rights"))
}

func TestCategoryUnknownThemeFallsBack(t *testing.T) {
	table := Default()

	require.Equal(t, CategoryUncategorized, table.Category("theme-unmapped"))
	require.Equal(t, CategoryUncategorized, table.Category(""))
}

func TestNewTableCopiesInput(t *testing.T) {
	source := map[string]string{"theme-x": CategoryEnvironment}
	table := NewTable(source)
	source["theme-x"] = CategoryLabourRights

	require.Equal(t, CategoryEnvironment, table.Category("theme-x"))
}

func TestFromYAMLOverridesDefaults(t *testing.T) {
	table, normalizer, err := FromYAML([]byte(`
categories:
  Environment:
    - theme-soil-quality
  Labour rights:
    - theme-water-pollution
titles:
  "Legacy heading": "Current heading"
`))
	require.NoError(t, err)

	require.Equal(t, CategoryEnvironment, table.Category("theme-soil-quality"))
	// File entries win over the built-in classification.
	require.Equal(t, CategoryLabourRights, table.Category("theme-water-pollution"))
	require.Equal(t, "Current heading", normalizer.Normalize("Legacy heading"))
	require.Equal(t, "Important to consider", normalizer.Normalize("Important to know"))
}

func TestFromYAMLRejectsMalformedDocument(t *testing.T) {
	_, _, err := FromYAML([]byte("categories: [not, a, map]"))
	require.Error(t, err)
}
