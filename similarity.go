package typereg

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

// rankBySimilarity returns names reordered by decreasing similarity to
// target. Comparison is case-insensitive; names with equal scores keep
// their relative (registration) order.
func rankBySimilarity(names []string, target string) []string {
	lower := strings.ToLower(target)
	score := make(map[string]float64, len(names))
	for _, name := range names {
		score[name] = levenshtein.Similarity(strings.ToLower(name), lower, nil)
	}
	ranked := slices.Clone(names)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return cmp.Compare(score[b], score[a])
	})
	return ranked
}

// errNotRegistered builds the lookup failure for name. When the registry
// has entries, the message lists them closest-match first so a user can
// spot a typo in externally supplied configuration.
func (r *Registry) errNotRegistered(name string) error {
	if len(r.order) == 0 {
		return fmt.Errorf("%q is not a registered %s: %w", name, r.label, ErrNotRegistered)
	}
	var b strings.Builder
	for _, candidate := range rankBySimilarity(r.order, name) {
		fmt.Fprintf(&b, "\n  * %s", candidate)
	}
	return fmt.Errorf("%q is not a registered %s: %w\navailable %ss (in decreasing similarity):%s",
		name, r.label, ErrNotRegistered, r.label, b.String())
}
