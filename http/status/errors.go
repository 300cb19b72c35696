package status

// Kind is the class of a parsing failure. It is an error itself, so
// errors.Is(err, status.InvalidInput) holds for every error of that kind.
type Kind uint8

const (
	// InvalidInput means a token does not match the grammar it is required to.
	InvalidInput Kind = iota + 1
	// NumericOverflow means a numeric field doesn't fit its width or is ambiguous.
	NumericOverflow
)

func (k Kind) Error() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NumericOverflow:
		return "numeric overflow"
	default:
		return "unknown error kind"
	}
}

type HTTPError struct {
	Message string
	Code    Code
	Kind    Kind
}

func NewError(code Code, kind Kind, message string) error {
	return HTTPError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Is reports whether the target is the kind of the error.
func (h HTTPError) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == h.Kind
}

var (
	ErrBadRequestLine       = NewError(BadRequest, InvalidInput, "malformed request line")
	ErrRequestLineTooLong   = NewError(RequestURITooLong, InvalidInput, "request line is too long")
	ErrMethodNotImplemented = NewError(NotImplemented, InvalidInput, "request method is not supported")
	ErrUnsupportedProtocol  = NewError(HTTPVersionNotSupported, InvalidInput, "malformed or unsupported protocol")
	ErrBadScheme            = NewError(BadRequest, InvalidInput, "malformed URI scheme")
	ErrBadAuth              = NewError(BadRequest, InvalidInput, "malformed URI userinfo")
	ErrBadHost              = NewError(BadRequest, InvalidInput, "malformed URI host")
	ErrBadPort              = NewError(BadRequest, InvalidInput, "malformed URI port")
	ErrPortOverflow         = NewError(BadRequest, NumericOverflow, "URI port is out of range or ambiguous")
	ErrBadPath              = NewError(BadRequest, InvalidInput, "malformed URI path")
	ErrBadRequestTarget     = NewError(BadRequest, InvalidInput, "request target does not conform to the URI grammar")
	ErrIncompleteEscape     = NewError(BadRequest, InvalidInput, "incomplete percent-encoded sequence")
	ErrBadEscape            = NewError(BadRequest, InvalidInput, "invalid hex digit in percent-encoded sequence")
	ErrInvalidRange         = NewError(BadRequest, InvalidInput, "invalid range")
)
