package constvars

// Client messages are shown to API consumers, dev messages end up in the logs.
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidDate                   = "date must be in YYYY-MM-DD format"

	ErrClientDateOutOfRange      = "date is outside the requested week"
	ErrClientSlotUnavailable     = "slot unavailable"
	ErrClientAlreadyBookedByUser = "already booked by user"
	ErrClientBookedByOther       = "booked by other user"
	ErrClientOneBookingPerDate   = "one booking per date"
	ErrClientNotBookedByUser     = "not booked by user"
	ErrClientBookingLostRace     = "slot was just taken, refresh and try again"
)

const (
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate      = "cannot parse the requested date"
	ErrDevCannotParseOffset    = "cannot parse week offset query parameter"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed     = "validation failed"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"

	ErrDevPasswordsDoNotMatch   = "passwords do not match"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUsernameAlreadyExists = "username already exists"
	ErrDevUserNotExists         = "user not exists in our system"

	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "session not found or expired"

	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevBookingRejected     = "booking request rejected: %s"
	ErrDevBookingLostRace     = "booking write matched zero documents, slot state changed underneath"
	ErrDevGridInconsistent    = "slot grid produced an unknown status value"
	ErrDevSlotIDOutOfRange    = "slot id %d outside [0,4]"
	ErrDevBlackoutFetchFailed = "failed to fetch blackout slots"

	ErrDevDBFailedToFindDocument    = "failed to find document in database"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document in database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents from database"

	ErrDevRedisGetNoData      = "failed to get data from redis with key: %s"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
)
