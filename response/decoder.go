package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BrandyMint/moysklad/textenc"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

var errTrailingData = errors.New("trailing data after json value")

type Decoder struct {
	logger zerolog.Logger
}

type Option func(*Decoder)

func WithLogger(logger zerolog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode never fails: decoding problems are reported through a BodyFailure
// or downgraded to BodyRaw.
func (d *Decoder) Decode(resp *RawResponse) Body {
	switch resp.Kind() {
	case KindJSON:
		return d.decodeJSON(resp)
	case KindHTML:
		return d.decodeHTML(resp)
	case KindXML, KindUnknown:
		fallthrough
	default:
		return Body{
			Kind:  BodyFailure,
			Value: nil,
			Text:  textenc.Render(resp.Body),
			Raw:   resp.Body,
			Cause: fmt.Errorf("%w: %q", ErrUnknownContentType, resp.ContentType()),
		}
	}
}

func (d *Decoder) decodeJSON(resp *RawResponse) Body {
	text := textenc.Render(resp.Body)

	if textenc.IsLegacy(resp.Body) {
		d.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", resp.URL).
			Msg("moysklad: json body is not valid utf-8, falling back to raw text")

		return Body{
			Kind:  BodyRaw,
			Value: nil,
			Text:  text,
			Raw:   resp.Body,
			Cause: nil,
		}
	}

	value, err := parseJSON(resp.Body)
	if err != nil {
		d.logger.Error().
			Err(err).
			Interface("headers", resp.Header).
			Str("body", text).
			Msg("moysklad: failed to parse json body")

		return Body{
			Kind:  BodyFailure,
			Value: nil,
			Text:  text,
			Raw:   resp.Body,
			Cause: fmt.Errorf("%w: %w", ErrMalformedJSON, err),
		}
	}

	d.logger.Debug().
		Int("status", resp.StatusCode).
		Interface("headers", resp.Header).
		Str("url", resp.URL).
		Interface("body", value).
		Msg("moysklad: decoded json response")

	return Body{
		Kind:  BodyJSON,
		Value: value,
		Text:  text,
		Raw:   resp.Body,
		Cause: nil,
	}
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return value, nil
}

func (d *Decoder) decodeHTML(resp *RawResponse) Body {
	text := textenc.Render(resp.Body)

	extracted, err := ExtractHTML(text, "body")
	if err != nil || extracted == "" {
		d.logger.Debug().
			Err(err).
			Str("body", text).
			Msg("moysklad: could not extract html body text")

		return Body{
			Kind:  BodyRaw,
			Value: nil,
			Text:  text,
			Raw:   resp.Body,
			Cause: nil,
		}
	}

	return Body{
		Kind:  BodyExtracted,
		Value: nil,
		Text:  extracted,
		Raw:   resp.Body,
		Cause: nil,
	}
}

// ExtractHTML returns the whitespace-collapsed text of the elements matched by
// selector in an HTML document.
func ExtractHTML(document, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("response: failed to parse html: %w", err)
	}

	return strings.Join(strings.Fields(doc.Find(selector).Text()), " "), nil
}
