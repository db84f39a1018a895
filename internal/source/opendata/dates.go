package opendata

import "time"

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05-07:00",
	time.RFC3339,
}

// parseDate parses the date encodings seen across export generations.
// Returns nil for absent or unparseable values.
func parseDate(f FlexString) *time.Time {
	if !f.Valid {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, f.Value); err == nil {
			return &t
		}
	}
	return nil
}
