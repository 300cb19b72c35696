package status

type (
	Code   uint16
	Status string
)

// Codes a failed request-line may be answered with. See RFC 9110, 15.5 and 15.6.
const (
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	RequestURITooLong       Code = 414 // RFC 9110, 15.5.15
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// KnownCodes lists every code defined in this package.
var KnownCodes = []Code{BadRequest, RequestURITooLong, NotImplemented, HTTPVersionNotSupported}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestURITooLong:
		return "Request URI Too Long"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}
