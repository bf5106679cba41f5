package live

// Request actions
const (
	ActionLoad         = "load"
	ActionSelectCase   = "select_case"
	ActionUnselectCase = "unselect_case"
)

// Messages returned with invalid_action
const (
	MsgUnknownAction  = "unknown action"
	MsgMissingCaseID  = "case_id is required"
	MsgInvalidMessage = "message could not be parsed"
)

// Log messages
const (
	LogMsgInvalidAction = "Live channel received invalid action"
	LogMsgDispatch      = "Live channel dispatch"
)
