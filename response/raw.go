package response

import (
	"net/http"
	"strings"
)

const (
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
	ContentTypeXML  = "application/xml"
)

type ContentKind int

const (
	KindUnknown ContentKind = iota
	KindJSON
	KindHTML
	KindXML
)

func (k ContentKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindHTML:
		return "html"
	case KindXML:
		return "xml"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// KindOf maps a content-type header value to its content kind by prefix.
// Anything unrecognised, including an empty value, is KindUnknown.
func KindOf(contentType string) ContentKind {
	ct := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case strings.HasPrefix(ct, ContentTypeJSON):
		return KindJSON
	case strings.HasPrefix(ct, ContentTypeHTML):
		return KindHTML
	case strings.HasPrefix(ct, ContentTypeXML):
		return KindXML
	default:
		return KindUnknown
	}
}

type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

func New(statusCode int, header http.Header, body []byte, url string) *RawResponse {
	if header == nil {
		header = make(http.Header)
	}

	return &RawResponse{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		URL:        url,
	}
}

func (r *RawResponse) ContentType() string {
	if r.Header == nil {
		return ""
	}

	return r.Header.Get(HeaderContentType)
}

func (r *RawResponse) Kind() ContentKind {
	return KindOf(r.ContentType())
}

func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
