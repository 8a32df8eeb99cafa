// Package record defines the asset record a dossier is built from.
//
// A record is normally produced by an extraction step and then edited by a
// person, so the JSON decoding is tolerant: scalar fields accept strings,
// numbers, booleans or null, and highlights may be plain strings or
// {"point": "..."} objects.
//
// Example JSON:
//
//	{
//	  "make": "Gulfstream",
//	  "model": "G650",
//	  "year": 2016,
//	  "keySpecs": [{"label": "Range", "value": "7000nm"}],
//	  "highlights": ["Low hours", {"point": "ADS-B Out"}],
//	  "avionics": "Honeywell PlaneView II\nDual FMS",
//	  "maintenanceStatus": [{"inspection": "C-Check", "lastPerformed": "2023", "nextDue": "2027"}]
//	}
package record

// Record is the structured description of an aircraft.
type Record struct {
	Make    Text `json:"make,omitempty"`
	Model   Text `json:"model,omitempty"`
	Year    Text `json:"year,omitempty"`
	Tagline Text `json:"tagline,omitempty"`

	Description Text        `json:"description,omitempty"`
	Highlights  []Highlight `json:"highlights,omitempty"`
	KeySpecs    []Spec      `json:"keySpecs,omitempty"`

	// Long-form prose.
	Airframe Text `json:"airframe,omitempty"`
	Engines  Text `json:"engines,omitempty"`
	APU      Text `json:"apu,omitempty"`
	Interior Text `json:"interior,omitempty"`
	Exterior Text `json:"exterior,omitempty"`

	// Newline-delimited line lists.
	Avionics  Text `json:"avionics,omitempty"`
	Equipment Text `json:"equipment,omitempty"`

	MaintenanceStatus []Inspection `json:"maintenanceStatus,omitempty"`
}

// Spec is a label/value pair shown as a card on the specifications page.
type Spec struct {
	Label Text `json:"label"`
	Value Text `json:"value"`
}

// Empty reports whether both label and value are blank.
func (s Spec) Empty() bool { return s.Label.Empty() && s.Value.Empty() }

// Highlight is a single selling point of the asset.
type Highlight struct {
	Point Text `json:"point"`
}

// Inspection is one row of the maintenance table.
type Inspection struct {
	Inspection    Text `json:"inspection"`
	LastPerformed Text `json:"lastPerformed"`
	NextDue       Text `json:"nextDue"`
}

// Empty reports whether all three fields are blank.
func (i Inspection) Empty() bool {
	return i.Inspection.Empty() && i.LastPerformed.Empty() && i.NextDue.Empty()
}
