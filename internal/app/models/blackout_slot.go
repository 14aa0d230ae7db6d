package models

// BlackoutSlot marks slots closed for maintenance or other reasons,
// independently of any booking.
type BlackoutSlot struct {
	ID      string `bson:"_id,omitempty"`
	Date    string `bson:"date"`
	SlotIDs []int  `bson:"slotIds"`
	Reason  string `bson:"reason,omitempty"`
}
