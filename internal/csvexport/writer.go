// Package csvexport renders reconciliation suggestions as CSV for
// spreadsheet review.
package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bookkeeper/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Suggestion ID",
	"Status",
	"Confidence",
	"Source Type",
	"Source Reference",
	"Source Name",
	"Source Amount",
	"Source Date",
	"Payment Reference",
	"Payment Amount",
	"Payment Date",
	"Payment Type",
	"Match Reasons",
	"Reviewed By",
	"Reviewed At",
	"Created At",
}

// Writer wraps csv.Writer for exporting suggestions as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w. The BOM must be written
// by the caller before the header.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSuggestion writes one suggestion row. Missing enrichment details
// produce empty cells rather than an error.
func (w *Writer) WriteSuggestion(s *domain.EnrichedSuggestion) error {
	row := []string{
		s.ID.String(),
		string(s.Status),
		fmt.Sprintf("%.2f", s.ConfidenceScore),
		string(s.SourceType),
	}
	row = append(row, candidateCells(s.SourceDetails)...)

	if s.TargetDetails != nil {
		row = append(row,
			s.TargetDetails.ReferenceNumber,
			s.TargetDetails.Amount.StringFixed(2),
			s.TargetDetails.Date.Format("2006-01-02"),
			s.TargetDetails.Name,
		)
	} else {
		row = append(row, "", "", "", "")
	}

	row = append(row, flattenReasons(s.MatchReasons))

	reviewedBy, reviewedAt := "", ""
	if s.ReviewedBy != nil {
		reviewedBy = *s.ReviewedBy
	}
	if s.ReviewedAt != nil {
		reviewedAt = s.ReviewedAt.Format("2006-01-02 15:04:05")
	}
	row = append(row, reviewedBy, reviewedAt, s.CreatedAt.Format("2006-01-02 15:04:05"))

	return w.csv.Write(row)
}

// Flush writes any buffered data and reports the first write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func candidateCells(d *domain.MatchCandidateDetails) []string {
	if d == nil {
		return []string{"", "", "", ""}
	}
	return []string{
		d.ReferenceNumber,
		d.Name,
		d.Amount.StringFixed(2),
		d.Date.Format("2006-01-02"),
	}
}

// flattenReasons renders the match-reason breakdown as "rule: reason"
// fragments joined by semicolons. Unparseable payloads export raw.
func flattenReasons(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var reasons []domain.MatchReason
	if err := json.Unmarshal(raw, &reasons); err != nil {
		return string(raw)
	}
	parts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		parts = append(parts, r.Rule+": "+r.Reason)
	}
	return strings.Join(parts, "; ")
}
