package session

// SessionError is a custom error type for session-level errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    SessionError = "session not found"
	ErrUnknownRules       SessionError = "unknown rule set"
	ErrRosterIncomplete   SessionError = "session does not have four players yet"
	ErrContractOutOfRange SessionError = "contract index out of range"
	ErrNoHandInProgress   SessionError = "no hand in progress"
	ErrNoHandsRecorded    SessionError = "no hands recorded yet"
	ErrNilConfig          SessionError = "config cannot be nil"
	ErrNilRepository      SessionError = "session repository cannot be nil"
	ErrNilClock           SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator   SessionError = "UUID generator cannot be nil"
)
