package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeExactMatches(t *testing.T) {
	n := NewNormalizer()

	require.Equal(t, "Important to consider", n.Normalize("Important to know"))
	require.Equal(t, "Relevant organizations", n.Normalize("CSR organizations"))
	require.Equal(t, "About MSC HK", n.Normalize("About MVO Nederland"))
	require.Equal(t, "ESG labels, supply chain initiatives & guidelines",
		n.Normalize("CSR labels, supply chain initiatives & guidelines"))
}

func TestNormalizeAcronymFallback(t *testing.T) {
	n := NewNormalizer()

	require.Equal(t, "Random ESG text", n.Normalize("Random CSR text"))
	require.Equal(t, "ESG in the supply chain", n.Normalize("CSR in the supply chain"))
	// Word-boundary only: the acronym embedded in a longer token stays.
	require.Equal(t, "CSRD reporting", n.Normalize("CSRD reporting"))
	// Case-sensitive on the acronym.
	require.Equal(t, "csr is lowercase", n.Normalize("csr is lowercase"))
}

func TestNormalizeLeavesUnknownTitlesAlone(t *testing.T) {
	n := NewNormalizer()

	require.Equal(t, "No acronym here", n.Normalize("No acronym here"))
	require.Equal(t, "", n.Normalize(""))
}
