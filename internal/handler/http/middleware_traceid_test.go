package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgusarov/notekeep/internal/logger"
)

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	traceID := rr.Header().Get("X-Trace-ID")
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id should be a UUID")
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Trace-ID", "upstream-trace")
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "upstream-trace", rr.Header().Get("X-Trace-ID"))
}

func TestRequestTraceID(t *testing.T) {
	withHeader := httptest.NewRequest(http.MethodGet, "/test", nil)
	withHeader.Header.Set("X-Trace-ID", "upstream-trace")
	assert.Equal(t, "upstream-trace", requestTraceID(withHeader))

	bare := httptest.NewRequest(http.MethodGet, "/test", nil)
	generated := requestTraceID(bare)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestWithTraceID_ContextLoggerCarriesTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Trace-ID", "trace-in-logs")
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-in-logs"`)
	assert.Contains(t, buf.String(), "inside handler")
}
