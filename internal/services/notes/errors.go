package notes

import "errors"

// ErrNotAuthorised is returned when no usable identity accompanies a call.
var ErrNotAuthorised = errors.New("not authorised")

// RemoteError is a failure the note service reported in its envelope
// (success:false). Message is surfaced to the user verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// FailureMessage renders an error for the notifier. Service-reported
// failures keep their verbatim message; anything else (transport, decode)
// gets the generic prefix plus the underlying error text.
func FailureMessage(prefix string, err error) string {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Message
	}
	return prefix + ": " + err.Error()
}
