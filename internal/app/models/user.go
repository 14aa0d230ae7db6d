package models

// User is the resident record: credentials plus the bookings map. Bookings
// are keyed by ISO date string with the slot id as value, so the document
// itself guarantees at most one booking per (user, date).
type User struct {
	ID        string         `bson:"_id,omitempty"`
	Username  string         `bson:"username"`
	Email     string         `bson:"email"`
	Password  string         `bson:"password"`
	Apartment int            `bson:"apartment"`
	Name      string         `bson:"name"`
	Bookings  map[string]int `bson:"bookings"`
	TimeModel `bson:",inline"`
}
