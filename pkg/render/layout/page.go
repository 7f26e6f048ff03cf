package layout

import (
	"strings"

	"github.com/matzehuels/amidakuji/pkg/errors"
)

// PageSize is a page format in points (1/72 inch).
type PageSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var (
	// A4 is ISO 216 A4, portrait.
	A4 = PageSize{Name: "a4", Width: 595.28, Height: 841.89}
	// Letter is US Letter, portrait.
	Letter = PageSize{Name: "letter", Width: 612, Height: 792}
)

// DefaultMargin is the page margin in points (one inch).
const DefaultMargin = 72.0

// Pages lists the supported page sizes by name.
var Pages = map[string]PageSize{
	A4.Name:     A4,
	Letter.Name: Letter,
}

// ParsePage looks up a page size by case-insensitive name.
// The empty string selects A4.
func ParsePage(name string) (PageSize, error) {
	if name == "" {
		return A4, nil
	}
	p, ok := Pages[strings.ToLower(name)]
	if !ok {
		return PageSize{}, errors.New(errors.ErrCodeInvalidParameter, "invalid page size: %s (must be 'a4' or 'letter')", name)
	}
	return p, nil
}
