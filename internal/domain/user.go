package domain

// User carries the fields the notification core needs: a display name for
// reminder texts and an optional preferred locale.
type User struct {
	ID     int64
	Name   string
	Locale *string
}
