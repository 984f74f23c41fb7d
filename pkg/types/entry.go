package types

import "encoding/json"

// Recognized entry categories. Unrecognized values are tolerated and kept
// verbatim; aggregate counting buckets them under CategoryOther.
const (
	CategoryBodycam    = "bodycam"
	CategoryPolice     = "police"
	CategoryCCTV       = "cctv"
	CategoryDashcam    = "dashcam"
	CategoryBystander  = "bystander"
	CategoryHelicopter = "helicopter"
	CategoryCourtroom  = "courtroom"
	CategoryOther      = "other"
)

// CategoryLabels maps category values to their display names.
var CategoryLabels = map[string]string{
	CategoryBodycam:    "Body Camera",
	CategoryPolice:     "Police Footage",
	CategoryCCTV:       "CCTV / Surveillance",
	CategoryDashcam:    "Dash Camera",
	CategoryBystander:  "Bystander Recording",
	CategoryHelicopter: "Helicopter / Aerial",
	CategoryCourtroom:  "Courtroom Footage",
	CategoryOther:      "Other / Misc.",
}

// KnownCategories is the set of recognized category values.
var KnownCategories = map[string]bool{
	CategoryBodycam:    true,
	CategoryPolice:     true,
	CategoryCCTV:       true,
	CategoryDashcam:    true,
	CategoryBystander:  true,
	CategoryHelicopter: true,
	CategoryCourtroom:  true,
	CategoryOther:      true,
}

// Entry is one archived footage record. The typed fields cover everything the
// store and query engine interpret; any other key found in the serialized form
// (case numbers, charges, clip lists, pinned flags, ...) is carried opaquely in
// Extra and written back unchanged.
type Entry struct {
	// ID is the unique sequential identifier, e.g. "PAFA-000042".
	// Assigned by the store on creation and immutable thereafter.
	ID string `json:"id"`

	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	URL         string `json:"url,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`

	// Optional free-text attributes; nil when absent.
	IncidentDate *string `json:"incident_date,omitempty"`
	Location     *string `json:"location,omitempty"`
	Agency       *string `json:"agency,omitempty"`
	Source       *string `json:"source,omitempty"`

	// ContentWarnings is a list of tag values in submission order.
	// Duplicates are not deduplicated.
	ContentWarnings []string `json:"content_warnings,omitempty"`

	// Submitted is the ISO-8601 creation timestamp. Set once by the store
	// and never altered by updates.
	Submitted string `json:"submitted,omitempty"`

	// Extra holds display-only fields that the core never interprets.
	Extra map[string]any `json:"-"`
}

// entryKeys are the serialized names of the typed Entry fields. Anything else
// routes through Extra.
var entryKeys = map[string]bool{
	"id":               true,
	"title":            true,
	"category":         true,
	"url":              true,
	"platform":         true,
	"description":      true,
	"incident_date":    true,
	"location":         true,
	"agency":           true,
	"source":           true,
	"content_warnings": true,
	"submitted":        true,
}

// entryAlias avoids recursing into the custom JSON methods.
type entryAlias Entry

// MarshalJSON writes the typed fields and the Extra passthrough fields as a
// single flat object.
func (e Entry) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(entryAlias(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return typed, nil
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(typed, &flat); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if entryKeys[k] {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		flat[k] = raw
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads the typed fields and collects every unrecognized key
// into Extra. Extra stays nil when the object has no passthrough fields.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var typed entryAlias
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	var extra map[string]any
	for k, raw := range flat {
		if entryKeys[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}

	typed.Extra = extra
	*e = Entry(typed)
	return nil
}
