package apierror

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/BrandyMint/moysklad/response"
)

type Classifier struct {
	legacyStatusDispatch bool
}

type Option func(*Classifier)

// WithLegacyStatusDispatch routes 2xx responses through the status table as
// well, so a successful JSON response surfaces as a KindJSON error.
func WithLegacyStatusDispatch() Option {
	return func(c *Classifier) {
		c.legacyStatusDispatch = true
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		legacyStatusDispatch: false,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var defaultClassifier = NewClassifier()

func Classify(resp *response.RawResponse, body response.Body) (any, error) {
	return defaultClassifier.Classify(resp, body)
}

// FromResponse decodes resp with a silent decoder and classifies it.
func FromResponse(resp *response.RawResponse) (any, error) {
	return defaultClassifier.Classify(resp, response.NewDecoder().Decode(resp))
}

// Classify returns the decoded payload of a successful response, or exactly
// one *Error. The content kind is checked before the status code.
func (c *Classifier) Classify(resp *response.RawResponse, body response.Body) (any, error) {
	switch resp.Kind() {
	case response.KindJSON:
	case response.KindHTML:
		return nil, &Error{
			Kind:       KindHTML,
			Message:    body.Text,
			StatusCode: resp.StatusCode,
			Detail:     nil,
			Cause:      nil,
		}
	case response.KindXML, response.KindUnknown:
		fallthrough
	default:
		return nil, &Error{
			Kind:       KindUnknownContentType,
			Message:    body.Text,
			StatusCode: resp.StatusCode,
			Detail:     nil,
			Cause:      body.Cause,
		}
	}

	if body.Failed(response.ErrMalformedJSON) {
		return nil, &Error{
			Kind:       KindParsing,
			Message:    body.Text,
			StatusCode: resp.StatusCode,
			Detail:     nil,
			Cause:      body.Cause,
		}
	}

	if resp.IsSuccess() && !c.legacyStatusDispatch {
		if body.Kind == response.BodyJSON {
			return body.Value, nil
		}

		return body.Text, nil
	}

	return nil, &Error{
		Kind:       KindForStatus(resp.StatusCode),
		Message:    jsonMessage(body),
		StatusCode: resp.StatusCode,
		Detail:     body.Value,
		Cause:      nil,
	}
}

func KindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusMethodNotAllowed, http.StatusPreconditionFailed:
		return KindMethodNotAllowed
	case http.StatusInternalServerError:
		return KindInternalServer
	case http.StatusBadGateway:
		return KindBadGateway
	default:
		return KindJSON
	}
}

func jsonMessage(body response.Body) string {
	if body.Kind != response.BodyJSON {
		return body.Text
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(body.Value); err != nil {
		return body.Text
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
