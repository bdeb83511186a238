package apierror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknownContentType Kind = iota
	KindHTML
	KindParsing
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindInternalServer
	KindBadGateway
	KindJSON
	KindXMLDomain
)

var (
	ErrAPI = errors.New("apierror: moysklad api error")

	ErrUnknownContentType = errors.New("apierror: unknown content type")
	ErrHTML               = errors.New("apierror: html error page")
	ErrParsing            = errors.New("apierror: malformed response body")
	ErrUnauthorized       = errors.New("apierror: unauthorized")
	ErrForbidden          = errors.New("apierror: resource forbidden")
	ErrNotFound           = errors.New("apierror: no resource found")
	ErrMethodNotAllowed   = errors.New("apierror: method not allowed")
	ErrInternalServer     = errors.New("apierror: internal server error")
	ErrBadGateway         = errors.New("apierror: bad gateway")
	ErrJSON               = errors.New("apierror: json error")
	ErrXMLDomain          = errors.New("apierror: xml domain error")
)

var sentinels = map[Kind]error{
	KindUnknownContentType: ErrUnknownContentType,
	KindHTML:               ErrHTML,
	KindParsing:            ErrParsing,
	KindUnauthorized:       ErrUnauthorized,
	KindForbidden:          ErrForbidden,
	KindNotFound:           ErrNotFound,
	KindMethodNotAllowed:   ErrMethodNotAllowed,
	KindInternalServer:     ErrInternalServer,
	KindBadGateway:         ErrBadGateway,
	KindJSON:               ErrJSON,
	KindXMLDomain:          ErrXMLDomain,
}

func (k Kind) String() string {
	switch k {
	case KindUnknownContentType:
		return "UnknownContentType"
	case KindHTML:
		return "HtmlError"
	case KindParsing:
		return "ParsingError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindForbidden:
		return "ResourceForbidden"
	case KindNotFound:
		return "NoResourceFound"
	case KindMethodNotAllowed:
		return "MethodNotAllowedError"
	case KindInternalServer:
		return "InternalServerError"
	case KindBadGateway:
		return "BadGatewayError"
	case KindJSON:
		return "JsonError"
	case KindXMLDomain:
		return "XmlDomainError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// StatusDriven reports whether the kind was selected from the HTTP status
// table and therefore belongs to the JSON error family.
func (k Kind) StatusDriven() bool {
	switch k {
	case KindUnauthorized, KindForbidden, KindNotFound, KindMethodNotAllowed,
		KindInternalServer, KindBadGateway, KindJSON:
		return true
	case KindUnknownContentType, KindHTML, KindParsing, KindXMLDomain:
		return false
	default:
		return false
	}
}

// Error is returned for every failed call. StatusCode is zero when no
// response status was available. Detail holds the decoded JSON value or,
// for KindXMLDomain, the parsed *entity.Error.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Detail     any
	Cause      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("apierror: %s: status %d", e.Kind, e.StatusCode)
	}

	return "apierror: " + e.Kind.String()
}

func (e *Error) Is(target error) bool {
	switch {
	case target == ErrAPI:
		return true
	case target == sentinels[e.Kind]:
		return true
	case target == ErrJSON:
		return e.Kind.StatusDriven()
	case target == ErrUnknownContentType:
		return e.Kind == KindHTML
	default:
		return false
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
