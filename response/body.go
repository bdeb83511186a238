package response

import (
	"errors"
)

var (
	ErrMalformedJSON      = errors.New("response: malformed json body")
	ErrUnknownContentType = errors.New("response: unknown content type")
)

type BodyKind int

const (
	BodyJSON BodyKind = iota
	BodyExtracted
	BodyRaw
	BodyFailure
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyExtracted:
		return "extracted"
	case BodyRaw:
		return "raw"
	case BodyFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Body is the decoded form of a response body. Value is set for BodyJSON,
// Cause for BodyFailure; Text always holds a displayable rendering.
type Body struct {
	Kind  BodyKind
	Value any
	Text  string
	Raw   []byte
	Cause error
}

func (b Body) Failed(cause error) bool {
	return b.Kind == BodyFailure && errors.Is(b.Cause, cause)
}
