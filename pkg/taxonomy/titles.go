package taxonomy

import "regexp"

// acronymPattern matches the standalone legacy acronym. Case-sensitive on
// purpose: "Csr" or "csr" in running text is not the product term.
var acronymPattern = regexp.MustCompile(`\bCSR\b`)

// Normalizer rewrites legacy section titles to current product terminology.
// Exact matches against the known legacy titles are tried first; anything
// else gets the generic acronym substitution and is otherwise left alone.
type Normalizer struct {
	exact map[string]string
}

// NewNormalizer returns a normalizer seeded with the known legacy titles.
func NewNormalizer() *Normalizer {
	return &Normalizer{exact: map[string]string{
		"Important to know":   "Important to consider",
		"CSR organizations":   "Relevant organizations",
		"About MVO Nederland": "About MSC HK",
		"CSR labels, supply chain initiatives & guidelines": "ESG labels, supply chain initiatives & guidelines",
		"CSR risk analysis": "ESG risk analysis",
	}}
}

// Normalize maps a raw section title to its canonical form. It never fails;
// the worst case returns the input untouched.
func (n *Normalizer) Normalize(rawTitle string) string {
	if canonical, ok := n.exact[rawTitle]; ok {
		return canonical
	}
	return acronymPattern.ReplaceAllString(rawTitle, "ESG")
}
