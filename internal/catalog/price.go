package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"holoholo/internal/storefront"
)

// ErrInvalidPriceRange is returned when a price range cannot be parsed
var ErrInvalidPriceRange = errors.New("invalid price range")

// PriceRange bounds product prices. A nil bound is open.
type PriceRange struct {
	Min *float64
	Max *float64
}

// IsZero reports whether the range places no constraint
func (r PriceRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// ParsePriceRange reads "10-100", "20-", "-50" or a bare upper bound
// such as "50". An empty string clears the range.
func ParsePriceRange(raw string) (PriceRange, error) {
	raw = strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if raw == "" {
		return PriceRange{}, nil
	}

	lo, hi, found := strings.Cut(raw, "-")
	if !found {
		lo, hi = "", lo
	}

	var r PriceRange
	var err error
	if r.Min, err = parseBound(lo); err != nil {
		return PriceRange{}, err
	}
	if r.Max, err = parseBound(hi); err != nil {
		return PriceRange{}, err
	}
	if r.IsZero() {
		return PriceRange{}, fmt.Errorf("%w: %q has no bounds", ErrInvalidPriceRange, raw)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return PriceRange{}, fmt.Errorf("%w: minimum above maximum", ErrInvalidPriceRange)
	}
	return r, nil
}

func parseBound(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("%w: %q is not a price", ErrInvalidPriceRange, s)
	}
	return &v, nil
}

// String renders the range in the form ParsePriceRange accepts
func (r PriceRange) String() string {
	if r.IsZero() {
		return ""
	}
	return bound(r.Min) + "-" + bound(r.Max)
}

func bound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Label is the human readable form shown in the title bar
func (r PriceRange) Label() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return storefront.FormatCurrency(*r.Min) + " to " + storefront.FormatCurrency(*r.Max)
	case r.Min != nil:
		return "from " + storefront.FormatCurrency(*r.Min)
	case r.Max != nil:
		return "up to " + storefront.FormatCurrency(*r.Max)
	default:
		return ""
	}
}
