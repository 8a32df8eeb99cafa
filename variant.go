package dossier

import (
	"fmt"
	"strings"
)

// Variant controls branding: the corner logo on every page and the closing
// contact page. Nothing else differs between variants.
type Variant int

const (
	// Full stamps the logo and ends with the contact page.
	Full Variant = iota
	// Clean has neither.
	Clean
)

// String returns "full" or "clean".
func (v Variant) String() string {
	switch v {
	case Full:
		return "full"
	case Clean:
		return "clean"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Branded reports whether the variant carries branding.
func (v Variant) Branded() bool { return v == Full }

func (v Variant) valid() bool { return v == Full || v == Clean }

// ParseVariant parses "full" or "clean", ignoring case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return Full, nil
	case "clean":
		return Clean, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
}
