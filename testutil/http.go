package testutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/BrandyMint/moysklad/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Reply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	lastHeader http.Header
	lastPath   string
}

// NewServer starts a server answering every request with reply. It is closed
// when the test finishes.
func NewServer(t *testing.T, reply Reply) *Server {
	t.Helper()

	srv := &Server{
		Server:     nil,
		mu:         sync.Mutex{},
		lastHeader: nil,
		lastPath:   "",
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.lastHeader = r.Header.Clone()
		srv.lastPath = r.URL.RequestURI()
		srv.mu.Unlock()

		if reply.ContentType != "" {
			w.Header().Set("Content-Type", reply.ContentType)
		}

		w.WriteHeader(reply.StatusCode)
		_, _ = w.Write(reply.Body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (s *Server) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastHeader
}

func (s *Server) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastPath
}

func AssertAPIError(t *testing.T, err error, expected apierror.Kind, expectedStatus int) *apierror.Error {
	t.Helper()

	require.Error(t, err)

	apiErr, ok := apierror.As(err)
	require.True(t, ok, "Error should be an *apierror.Error, got %T", err)
	assert.Equal(t, expected, apiErr.Kind, "Error kind mismatch")
	assert.Equal(t, expectedStatus, apiErr.StatusCode, "Error status code mismatch")
	assert.True(t, errors.Is(err, apierror.ErrAPI), "Error should match apierror.ErrAPI")

	return apiErr
}

func AssertMessageContains(t *testing.T, err error, substring string) {
	t.Helper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), substring, "Error message should contain substring")
}
