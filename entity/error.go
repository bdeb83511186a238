package entity

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BrandyMint/moysklad/textenc"
	"github.com/BrandyMint/moysklad/validator"
	"golang.org/x/net/html/charset"
)

var (
	ErrParseError   = errors.New("entity: failed to parse error document")
	ErrInvalidError = errors.New("entity: invalid error document")
)

const (
	momentLayout = "20060102150405"
	momentLength = len(momentLayout) + 3
)

// Error is the error document returned by the XML API:
//
//	<error><uid>admin@shop</uid><moment>20150609112728449</moment><message>...</message></error>
type Error struct {
	XMLName xml.Name `xml:"error"`
	UID     string   `xml:"uid"`
	Moment  string   `xml:"moment"  validate:"omitempty,numeric,len=17"`
	Message string   `xml:"message" validate:"required"`
}

var errorValidator = validator.New()

// ParseError decodes an error document. Documents declared as UTF-8 that
// actually carry Windows-1251 bytes are decoded a second time as
// Windows-1251.
func ParseError(data []byte) (*Error, error) {
	doc, err := decodeError(data)
	if err != nil && textenc.IsLegacy(data) {
		doc, err = decodeError([]byte(textenc.Render(data)))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseError, err)
	}

	if err := errorValidator.Validate(*doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidError, err)
	}

	return doc, nil
}

func decodeError(data []byte) (*Error, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var doc Error
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (e *Error) Error() string {
	return e.Message
}

// Time parses Moment, a local timestamp with millisecond precision.
func (e *Error) Time(loc *time.Location) (time.Time, error) {
	if len(e.Moment) != momentLength {
		return time.Time{}, fmt.Errorf("%w: moment %q", ErrInvalidError, e.Moment)
	}

	ts, err := time.ParseInLocation(momentLayout, e.Moment[:len(momentLayout)], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: moment %q: %w", ErrInvalidError, e.Moment, err)
	}

	millis, err := strconv.Atoi(e.Moment[len(momentLayout):])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: moment %q: %w", ErrInvalidError, e.Moment, err)
	}

	return ts.Add(time.Duration(millis) * time.Millisecond), nil
}
