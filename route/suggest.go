package route

import "github.com/agnivade/levenshtein"

// Suggest returns the route name closest to an unmatched address, for "did
// you mean" output. Empty when nothing is plausibly close (more than half the
// input would need to change).
func (t *Table) Suggest(address string) string {
	path := trimAddress(address)
	if path == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, r := range t.routes {
		for _, candidate := range []string{r.name, trimAddress(r.pat.String())} {
			if candidate == "" {
				continue
			}
			d := levenshtein.ComputeDistance(path, candidate)
			if bestDist < 0 || d < bestDist {
				best, bestDist = r.name, d
			}
		}
	}
	if bestDist < 0 || bestDist > (len(path)+1)/2 {
		return ""
	}
	return best
}
