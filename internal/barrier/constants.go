package barrier

// Error messages
const (
	ErrMsgNotExpected     = "participant is not part of this barrier"
	ErrMsgAlreadyArrived  = "participant already arrived"
	ErrMsgAlreadyReleased = "barrier already released"
	ErrMsgInvalidSize     = "barrier size must be positive"
)
