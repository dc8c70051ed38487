package hand

// InputError is a custom error type for hand construction errors
type InputError string

// Error implements the error interface
func (e InputError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilContract        InputError = "contract cannot be nil"
	ErrShapeMismatch      InputError = "contractors do not match the contract's required shape"
	ErrBidOutOfRange      InputError = "bid is outside the contract's legal range"
	ErrUnexpectedBid      InputError = "contract does not take a bid"
	ErrTricksOutOfRange   InputError = "tricks must be between 0 and 13"
	ErrMissingContractors InputError = "contractors were never set"
	ErrMissingBid         InputError = "bid was never set"
	ErrMissingTricks      InputError = "tricks were never set"
	ErrAlreadyBuilt       InputError = "hand was already built"
	ErrTooManyPlayers     InputError = "contractor count exceeds any known shape"
	ErrInvalidInput       InputError = "invalid input"
)
