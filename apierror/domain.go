package apierror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrandyMint/moysklad/entity"
	"github.com/BrandyMint/moysklad/response"
	"github.com/BrandyMint/moysklad/textenc"
)

var (
	ErrConstruction = errors.New("error during error construction")

	errNoResponse = errors.New("no response")
)

// FromDomainResponse builds a KindXMLDomain error for callers that already
// know the response carries an XML error document or an HTML error page.
// It never fails: problems building the error end up in its message.
func FromDomainResponse(resp *response.RawResponse) *Error {
	if resp == nil {
		return &Error{
			Kind:       KindXMLDomain,
			Message:    fmt.Sprintf("%s: %v: status 0", ErrConstruction, errNoResponse),
			StatusCode: 0,
			Detail:     nil,
			Cause:      fmt.Errorf("%w: %w", ErrConstruction, errNoResponse),
		}
	}

	apiErr := &Error{
		Kind:       KindXMLDomain,
		Message:    "",
		StatusCode: resp.StatusCode,
		Detail:     nil,
		Cause:      nil,
	}

	message, doc, err := parseDomain(resp)
	if err != nil {
		apiErr.Cause = fmt.Errorf("%w: %w", ErrConstruction, err)
		apiErr.Message = fmt.Sprintf("%s: %v: status %d", ErrConstruction, err, resp.StatusCode)

		return apiErr
	}

	apiErr.Message = message
	if doc != nil {
		apiErr.Detail = doc
	}

	return apiErr
}

func parseDomain(resp *response.RawResponse) (string, *entity.Error, error) {
	contentType := strings.ToLower(resp.ContentType())

	switch {
	case strings.Contains(contentType, response.ContentTypeXML):
		doc, err := entity.ParseError(resp.Body)
		if err != nil {
			return "", nil, err
		}

		return doc.Message, doc, nil
	case strings.Contains(contentType, response.ContentTypeHTML):
		text, err := response.ExtractHTML(textenc.Render(resp.Body), "body h1")
		if err != nil {
			return "", nil, err
		}

		return text, nil, nil
	default:
		return "", nil, fmt.Errorf("unknown content-type %q to parse error %s",
			resp.ContentType(), textenc.Render(resp.Body))
	}
}
