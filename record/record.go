package record

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jetspec/dossier/segment"
)

// Parse decodes a JSON record.
func Parse(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("record: parsing: %w", err)
	}
	return &r, nil
}

// Load reads and decodes the JSON record at path.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return Parse(data)
}

// Points returns the highlight texts that still have content once
// normalized, in order.
func (r *Record) Points() []string {
	var out []string
	for _, h := range r.Highlights {
		if segment.Normalize(h.Point.String()) != "" {
			out = append(out, h.Point.String())
		}
	}
	return out
}

// Specs returns the key specs that have a label or a value, in order.
func (r *Record) Specs() []Spec {
	var out []Spec
	for _, s := range r.KeySpecs {
		if !s.Empty() {
			out = append(out, s)
		}
	}
	return out
}

// Inspections returns the maintenance rows with at least one field set.
func (r *Record) Inspections() []Inspection {
	var out []Inspection
	for _, m := range r.MaintenanceStatus {
		if !m.Empty() {
			out = append(out, m)
		}
	}
	return out
}

// Reference returns a stable identifier for the dossier. Records with the
// same make, model and year share a reference.
func (r *Record) Reference() string {
	key := strings.Join([]string{
		strings.ToLower(r.Make.String()),
		strings.ToLower(r.Model.String()),
		r.Year.String(),
	}, "|")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("dossier:"+key)).String()
}
