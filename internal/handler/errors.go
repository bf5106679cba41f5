package handler

// Generic HTTP error messages for client responses.
// Handlers and tests both reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingToken          = "Missing participant token"
	ErrMsgInvalidBidKey         = "Invalid bid key '%s'"
	ErrMsgInvalidBidAmount      = "Invalid bid amount for case %s"
	ErrMsgDuplicateBidKey       = "More than one bid for case %d"
	ErrMsgEmptyUpload           = "Case table is empty"
	ErrMsgInvalidTimeout        = "Invalid timeout parameter"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgSessionNotFoundError = "Session not found"
	ErrMsgRecordNotFoundError  = "No stored results for that session"
	ErrMsgParticipantNotFound  = "Participant not found. Log in again."
	ErrMsgCredentialsError     = "Invalid username or password"
	ErrMsgForbiddenError       = "Your role cannot do that"
	ErrMsgSessionFullError     = "All judge seats are taken"
	ErrMsgWrongModeError       = "Not available in this session mode"
	ErrMsgCaseNotFoundError    = "Case not found"
	ErrMsgCaseUnavailableError = "Case is already taken"
	ErrMsgBudgetExceededError  = "Claim exceeds your budget"
	ErrMsgCasesLockedError     = "Cases can no longer be replaced"
	ErrMsgBidOutOfRangeError   = "Bid is outside the allowed range"
	ErrMsgBidPrecisionError    = "Bids carry at most two decimal places"
	ErrMsgAlreadySubmittedErr  = "You have already submitted bids"
	ErrMsgAuctionResolvedError = "The auction has already been resolved"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// Header and parameter names
const (
	HeaderParticipantToken = "X-Participant-Token"
	URLParamSession        = "code"
	QueryParamWait         = "wait"
	QueryParamTimeout      = "timeout"
	BidKeyPrefix           = "bid_case_"
	ContentTypeJSON        = "application/json"
)

// Long-poll bounds for auction results
const (
	DefaultWaitTimeout = 25 // seconds
	MaxWaitTimeout     = 120
)

// Log messages
const (
	LogMsgSessionCreateFailed = "Failed to create session"
	LogMsgLoginFailed         = "Login failed"
	LogMsgUploadFailed        = "Case upload failed"
	LogMsgSubmitBidsFailed    = "Bid submission failed"
	LogMsgResultsFailed       = "Failed to get auction results"
	LogMsgLiveFailed          = "Live request failed"
	LogMsgNextRoundFailed     = "Failed to advance round"
	LogMsgSummaryFailed       = "Failed to build summary"
	LogMsgListCasesFailed     = "Failed to list cases"
	LogMsgStoredResultsFailed = "Failed to load stored results"
)
