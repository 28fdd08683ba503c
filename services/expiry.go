package services

import (
	"time"

	"duit/model"
)

// Layouts accepted for string-encoded due dates. The second is what the web
// client's datetime-local input produces.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ResolveInstant normalizes any expiry encoding to one canonical instant.
// An absent due date resolves to 23:59 of now's calendar day in loc, and an
// unparseable string degrades to the same default rather than erroring.
func ResolveInstant(e model.Expiry, now time.Time, loc *time.Location) time.Time {
	switch e.Kind {
	case model.ExpiryTimestamp:
		return time.UnixMilli(e.Seconds*1000 + e.Nanos/int64(time.Millisecond)).In(loc)
	case model.ExpiryString:
		if t, ok := parseExpiry(e.Raw, loc); ok {
			return t
		}
		return endOfDay(now, loc)
	case model.ExpiryDate:
		return e.Date.In(loc)
	default:
		return endOfDay(now, loc)
	}
}

// NextOccurrence returns tomorrow at 00:00 in loc. time.Date carries the
// zone offset into the instant, so the stored value reads back as local
// midnight rather than midnight shifted by the UTC offset.
func NextOccurrence(now time.Time, loc *time.Location) time.Time {
	d := now.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)
}

// Expired reports whether the todo's due instant has passed. A todo due
// exactly now counts as expired.
func Expired(e model.Expiry, now time.Time, loc *time.Location) bool {
	return ResolveInstant(e, now, loc).UnixMilli() <= now.UnixMilli()
}

func parseExpiry(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func endOfDay(now time.Time, loc *time.Location) time.Time {
	d := now.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, loc)
}
