package archive

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pafa-project/pafa/pkg/types"
)

// FileReport appends a report flagging an entry for administrative review.
// The reason is required; the flagged entry is not required to exist, so
// reports on since-removed entries still land.
func (s *Store) FileReport(entryID, reason string) (types.Report, error) {
	if entryID == "" {
		return types.Report{}, types.ErrInvalidID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return types.Report{}, types.ErrReasonRequired
	}

	report := types.Report{
		ReportID:   newReportID(),
		EntryID:    entryID,
		Reason:     reason,
		ReportedAt: s.now().UTC().Format(time.RFC3339),
	}

	var reports []types.Report
	s.loadJSON(ReportsKey, &reports)
	reports = append(reports, report)
	if err := s.saveJSON(ReportsKey, reports); err != nil {
		return types.Report{}, err
	}
	return report, nil
}

// Reports returns all filed reports, oldest first.
func (s *Store) Reports() []types.Report {
	var reports []types.Report
	if !s.loadJSON(ReportsKey, &reports) || reports == nil {
		return []types.Report{}
	}
	return reports
}

// newReportID generates a UUID v7 report handle, falling back to v4 if v7
// generation fails.
func newReportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
