package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// brandIDs maps well-known brand name aliases (lowercased) to their numeric
// key in listMarken. Unknown names fall through to no brand filter at all,
// which is how the running system behaves and consumers rely on it, so it is
// kept rather than turned into an error.
var brandIDs = map[string]int{
	"oneal":         7,
	"o'neal":        7,
	"oakley":        19,
	"lezyne":        13,
	"evs":           14,
	"rekluse":       6,
	"azonic":        18,
	"kini":          25,
	"kini red bull": 25,
}

// ProductFilter holds the optional predicates of a product listing. The zero
// value matches every article regardless of availability.
type ProductFilter struct {
	Brand      string // brand name or alias, case-insensitive
	BrandID    int
	CategoryID int
	Search     string // substring match on number, description, EAN
	ActiveOnly bool
}

// Conditions compiles the filter into a single conjunction. The count query
// and the page query share the exact same Sqlizer, so their predicates and
// bind values can never drift apart. An empty filter renders as (1=1).
func (f ProductFilter) Conditions() sq.And {
	and := sq.And{}

	if f.ActiveOnly {
		and = append(and, sq.Eq{"a.boolA_NichtMehrLieferbar": 0})
	}

	brandID := f.BrandID
	if f.Brand != "" {
		if id, ok := brandIDs[strings.ToLower(f.Brand)]; ok {
			brandID = id
		}
	}
	if brandID != 0 {
		and = append(and, sq.Eq{"a.lngA_Marke_FKey": brandID})
	}

	if f.CategoryID != 0 {
		and = append(and, sq.Eq{"a.lngA_AGruppe_FKey": f.CategoryID})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		and = append(and, sq.Or{
			sq.Like{"a.strA_Nummer": pattern},
			sq.Like{"a.strA_Bezeichnung": pattern},
			sq.Like{"a.strA_EAN": pattern},
		})
	}

	return and
}
