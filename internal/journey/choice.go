package journey

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxNameDistance is how many edits a typed name may be off by.
const maxNameDistance = 2

// Choice picks one of the offered options, either by position or by
// name. A name may be misspelled by up to maxNameDistance edits as long
// as a single option is the closest.
type Choice struct {
	Index *int   `json:"index,omitempty"`
	Name  string `json:"name,omitempty"`
}

func resolve(field string, c Choice, names []string) (int, error) {
	if c.Index != nil {
		i := *c.Index
		if i < 0 || i >= len(names) {
			return 0, &ValidationError{Field: field, Message: fmt.Sprintf("index %d out of range [0,%d)", i, len(names))}
		}
		return i, nil
	}

	want := strings.ToLower(strings.TrimSpace(c.Name))
	if want == "" {
		return 0, &ValidationError{Field: field, Message: "index or name is required"}
	}

	best, bestDist, tie := -1, maxNameDistance+1, false
	for i, n := range names {
		d := levenshtein.ComputeDistance(want, strings.ToLower(n))
		switch {
		case d < bestDist:
			best, bestDist, tie = i, d, false
		case d == bestDist:
			tie = true
		}
	}
	if best < 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%q is not one of the options", c.Name)}
	}
	if tie && bestDist > 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%q is ambiguous", c.Name)}
	}
	return best, nil
}

func IndexChoice(i int) Choice { return Choice{Index: &i} }

func NameChoice(name string) Choice { return Choice{Name: name} }
