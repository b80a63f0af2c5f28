package column

import (
	"strings"
	"time"
)

// FormatProvider supplies the culture-specific rules Convert uses for string
// input and output. The canonical text format (ToText/FromText) ignores it.
type FormatProvider interface {
	// DecimalSeparator separates the integral and fractional digits.
	DecimalSeparator() string
	// GroupSeparator separates digit groups; it is removed before parsing.
	GroupSeparator() string
	// TimeLayout is the time.Parse layout for date-time strings.
	TimeLayout() string
	// Location is used to interpret date-time strings without a zone.
	Location() *time.Location
}

// Format is a plain FormatProvider.
type Format struct {
	Decimal string
	Group   string
	Layout  string
	Loc     *time.Location
}

// InvariantFormat is the locale-free default.
var InvariantFormat = Format{
	Decimal: ".",
	Group:   ",",
	Layout:  time.RFC3339Nano,
	Loc:     time.UTC,
}

// DecimalSeparator implements FormatProvider.
func (f Format) DecimalSeparator() string {
	if f.Decimal == "" {
		return "."
	}
	return f.Decimal
}

// GroupSeparator implements FormatProvider.
func (f Format) GroupSeparator() string { return f.Group }

// TimeLayout implements FormatProvider.
func (f Format) TimeLayout() string {
	if f.Layout == "" {
		return time.RFC3339Nano
	}
	return f.Layout
}

// Location implements FormatProvider.
func (f Format) Location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}
	return f.Loc
}

// normalizeNumber rewrites culture-formatted digits into strconv syntax.
func normalizeNumber(s string, fp FormatProvider) string {
	s = strings.TrimSpace(s)
	if g := fp.GroupSeparator(); g != "" && g != fp.DecimalSeparator() {
		s = strings.ReplaceAll(s, g, "")
	}
	if d := fp.DecimalSeparator(); d != "." {
		s = strings.Replace(s, d, ".", 1)
	}
	return s
}

// localizeNumber rewrites strconv output into the provider's decimal separator.
func localizeNumber(s string, fp FormatProvider) string {
	if d := fp.DecimalSeparator(); d != "." {
		return strings.Replace(s, ".", d, 1)
	}
	return s
}
