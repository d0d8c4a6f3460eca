package pages

import (
	"time"

	"ai-architect-console/internal/models"
)

const (
	dateLayout     = "1/2/2006"
	dateTimeLayout = "1/2/2006, 3:04:05 PM"
)

// Locale renders timestamps the way an en-US browser does, in Location.
type Locale struct {
	Location *time.Location
}

func (l Locale) location() *time.Location {
	if l.Location == nil {
		return time.Local
	}
	return l.Location
}

func (l Locale) Date(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(l.location()).Format(dateLayout)
}

func (l Locale) DateTime(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(l.location()).Format(dateTimeLayout)
}

// Truncate cuts s to max runes, appending "..." when anything was dropped.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
