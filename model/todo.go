package model

import "time"

// Priority values mirror the stored strings: "1" high, "2" medium, "3" low.
const (
	PriorityHigh   = "1"
	PriorityMedium = "2"
	PriorityLow    = "3"
)

// Palette is the fixed set of display colors. Todos without a color get one
// assigned by rotation over this slice when a list is rendered.
var Palette = []string{"blue", "orange", "green", "indigo", "red", "emerald", "fuchsia"}

type Todo struct {
	ID          string `firestore:"-"`
	Title       string `firestore:"title"`
	Description string `firestore:"description"`
	Completed   bool   `firestore:"completed"`
	Recurring   bool   `firestore:"recurring"`
	Priority    string `firestore:"priority,omitempty"`
	Tags        string `firestore:"tags,omitempty"`
	Color       string `firestore:"color,omitempty"`
	User        string `firestore:"user"`

	// Expiry is kept out of the firestore codec; the store field can be a
	// timestamp, a string or missing, so the gateway maps it by hand.
	Expiry Expiry `firestore:"-"`
}

type ExpiryKind int

// The four encodings a due date can arrive in.
const (
	ExpiryAbsent ExpiryKind = iota
	ExpiryTimestamp
	ExpiryString
	ExpiryDate
)

// Expiry is the tagged variant for a todo's due date. Only the field matching
// Kind is meaningful.
type Expiry struct {
	Kind    ExpiryKind
	Seconds int64     // ExpiryTimestamp
	Nanos   int64     // ExpiryTimestamp
	Raw     string    // ExpiryString
	Date    time.Time // ExpiryDate
}

// ExpiryFromTime builds a store-native expiry from an instant.
func ExpiryFromTime(t time.Time) Expiry {
	return Expiry{Kind: ExpiryTimestamp, Seconds: t.Unix(), Nanos: int64(t.Nanosecond())}
}

// ExpiryFromField maps a raw Firestore field value onto the variant.
// Unknown value types count as absent.
func ExpiryFromField(v interface{}) Expiry {
	switch t := v.(type) {
	case time.Time:
		return Expiry{Kind: ExpiryTimestamp, Seconds: t.Unix(), Nanos: int64(t.Nanosecond())}
	case string:
		if t == "" {
			return Expiry{Kind: ExpiryAbsent}
		}
		return Expiry{Kind: ExpiryString, Raw: t}
	default:
		return Expiry{Kind: ExpiryAbsent}
	}
}
