package catalog

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// Record is what a media-backed catalog entity must expose to the store.
// Identity, slug and timestamps are reachable only through the store;
// clients can never set them from a payload.
type Record interface {
	GetID() uint
	GetTitle() string
	SetTitle(string)
	GetSlug() string
	SetSlug(string)
	GetImage() string
	SetImage(string)
	GetStatus() string
	SetStatus(string)
	Touch(time.Time)

	// EntityName is the lowercase singular used in error codes and
	// audit rows ("class", "program").
	EntityName() string

	// TextFields is the closed set of optional free-text fields a
	// client payload may set, keyed by payload name.
	TextFields() map[string]*string
}
