package testutil

import (
	"net/http"
	"testing"

	"github.com/BrandyMint/moysklad/response"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const DefaultURL = "https://online.moysklad.ru/api/remap/1.2/entity/customerorder"

func NewRawResponse(statusCode int, contentType, body string) *response.RawResponse {
	return NewRawResponseBytes(statusCode, contentType, []byte(body))
}

func NewRawResponseBytes(statusCode int, contentType string, body []byte) *response.RawResponse {
	header := make(http.Header)
	if contentType != "" {
		header.Set(response.HeaderContentType, contentType)
	}

	return response.New(statusCode, header, body, DefaultURL)
}

// CP1251 encodes s with the Windows-1251 code page, producing bytes that are
// not valid UTF-8 for any Cyrillic input.
func CP1251(t *testing.T, s string) []byte {
	t.Helper()

	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err, "Failed to encode test payload as windows-1251")

	return encoded
}
