package errors

// Code classifies an error for dispatch decisions: which failures are
// user-correctable, which are transient, and which are bugs.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// UserFacing reports whether errors with this code should be shown to the
// user verbatim as a transient alert. Internal and unavailable errors get a
// generic message instead.
func (c Code) UserFacing() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeAlreadyExists,
		CodeFailedPrecondition, CodeOutOfRange, CodeResourceExhausted,
		CodeUnimplemented:
		return true
	default:
		return false
	}
}
