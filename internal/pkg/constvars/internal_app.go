package constvars

type ContextKey string

const (
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionBlackoutSlots = "blackout_slots"
)

// DateFormat is the wire and storage format for booking dates.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

const (
	ResourceAuth    = "auth"
	ResourceUsers   = "users"
	ResourceBooking = "booking"
)
