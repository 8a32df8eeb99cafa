// Package brand holds the visual identity stamped on a dossier: palette,
// contact details, logo and footer line.
package brand

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jetspec/dossier/asset"
	"github.com/jetspec/dossier/surface"
)

// Palette is the set of colors used across the dossier.
type Palette struct {
	Background surface.Color // page fill
	Accent     surface.Color // titles, dividers, bullets, table header
	Title      surface.Color
	Body       surface.Color // prose
	Highlight  surface.Color // highlights and contact lines
	Label      surface.Color // spec card labels
	Card       surface.Color // spec card fill
	Footer     surface.Color
	Rule       surface.Color // table row rule
	Plate      surface.Color // cover and caption plates
}

// Contact is what the contact page lists.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// Lines returns the non-empty contact lines in display order.
func (c Contact) Lines() []string {
	var out []string
	for _, s := range []string{c.Email, c.Phone, c.Address, c.Website} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Brand is a complete branding configuration.
type Brand struct {
	Name    string
	Footer  string
	Palette Palette
	Contact Contact
	Logo    *asset.Asset // nil when the brand has no logo
}

// Default palette, as hex.
const (
	hexBackground = "#050505"
	hexAccent     = "#d4af37"
	hexTitle      = "#ffffff"
	hexBody       = "#dcdcdc"
	hexHighlight  = "#c8c8c8"
	hexLabel      = "#969696"
	hexCard       = "#141414"
	hexFooter     = "#646464"
	hexRule       = "#323232"
	hexPlate      = "#000000"
)

// Default returns the built-in brand without a logo.
func Default() *Brand {
	return &Brand{
		Name:   "Glintero",
		Footer: "Specification subject to verification",
		Palette: Palette{
			Background: mustColor(hexBackground),
			Accent:     mustColor(hexAccent),
			Title:      mustColor(hexTitle),
			Body:       mustColor(hexBody),
			Highlight:  mustColor(hexHighlight),
			Label:      mustColor(hexLabel),
			Card:       mustColor(hexCard),
			Footer:     mustColor(hexFooter),
			Rule:       mustColor(hexRule),
			Plate:      mustColor(hexPlate),
		},
		Contact: Contact{
			Email:   "glintero@glintero.com",
			Phone:   "+971 4 330 1528",
			Address: "PO Box 453440, Dubai, UAE",
			Website: "www.glintero.com",
		},
	}
}

// ParseColor parses a "#rrggbb" or "#rgb" color.
func ParseColor(s string) (surface.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return surface.Color{}, fmt.Errorf("brand: color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return surface.Color{R: int(r), G: int(g), B: int(b)}, nil
}

func mustColor(s string) surface.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// file is the JSON form of a brand. Unset fields keep the defaults.
type file struct {
	Name    string            `json:"name,omitempty"`
	Footer  string            `json:"footer,omitempty"`
	Logo    string            `json:"logo,omitempty"` // path relative to the brand file
	Colors  map[string]string `json:"colors,omitempty"`
	Contact *Contact          `json:"contact,omitempty"`
}

// Parse decodes a JSON brand on top of the defaults. Relative logo paths are
// resolved against dir.
func Parse(data []byte, dir string) (*Brand, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("brand: parsing: %w", err)
	}

	b := Default()
	if f.Name != "" {
		b.Name = f.Name
	}
	if f.Footer != "" {
		b.Footer = f.Footer
	}
	if f.Contact != nil {
		b.Contact = *f.Contact
	}

	slots := map[string]*surface.Color{
		"background": &b.Palette.Background,
		"accent":     &b.Palette.Accent,
		"title":      &b.Palette.Title,
		"body":       &b.Palette.Body,
		"highlight":  &b.Palette.Highlight,
		"label":      &b.Palette.Label,
		"card":       &b.Palette.Card,
		"footer":     &b.Palette.Footer,
		"rule":       &b.Palette.Rule,
		"plate":      &b.Palette.Plate,
	}
	for name, hex := range f.Colors {
		slot, ok := slots[name]
		if !ok {
			return nil, fmt.Errorf("brand: unknown color %q", name)
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, err
		}
		*slot = c
	}

	if f.Logo != "" {
		path := f.Logo
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		logo, err := asset.Load(path)
		if err != nil {
			return nil, fmt.Errorf("brand: logo: %w", err)
		}
		logo.Handle = "brand-logo"
		b.Logo = logo
	}
	return b, nil
}

// Load reads a JSON brand file.
func Load(path string) (*Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("brand: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}
