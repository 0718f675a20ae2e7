// SPDX-License-Identifier: MPL-2.0

package argument

import (
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// SuggestionFunc produces completion candidates for a prefix. It may
	// return candidates that do not match; SuggestionSource filters them.
	SuggestionFunc func(prefix string) []string

	// SuggestionSource aggregates static candidates and dynamic producers.
	SuggestionSource struct {
		static  []string
		dynamic []SuggestionFunc
	}
)

// Suggest returns the de-duplicated, sorted candidates whose beginning
// matches prefix case-insensitively. An empty prefix matches everything.
func (s SuggestionSource) Suggest(prefix string) []string {
	candidates := slices.Clone(s.static)
	for _, fn := range s.dynamic {
		candidates = append(candidates, fn(prefix)...)
	}

	lower := strings.ToLower(prefix)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Static returns a copy of the static candidates in registration order.
func (s SuggestionSource) Static() []string {
	return slices.Clone(s.static)
}

// IsEmpty reports whether the source has no candidates and no producers.
func (s SuggestionSource) IsEmpty() bool {
	return len(s.static) == 0 && len(s.dynamic) == 0
}

func (s SuggestionSource) clone() SuggestionSource {
	return SuggestionSource{
		static:  slices.Clone(s.static),
		dynamic: slices.Clone(s.dynamic),
	}
}
