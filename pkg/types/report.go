package types

// Report flags an entry for administrative review.
type Report struct {
	// ReportID is a UUID v7 handle for the report itself.
	ReportID string `json:"report_id"`

	// EntryID is the id of the flagged entry. The entry is not required to
	// exist; reports on since-removed entries are kept.
	EntryID string `json:"entry_id"`

	// Reason is the reporter's free-text justification (required, non-empty).
	Reason string `json:"reason"`

	// ReportedAt is the ISO-8601 timestamp of the report.
	ReportedAt string `json:"reported_at"`
}
