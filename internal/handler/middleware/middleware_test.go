package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/utils"
	"github.com/MKhiriev/shareit/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

// ── TraceID ──────────────────────────────────────────────────────────────────

func TestTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace id is reused", incoming: "trace-abc", wantSame: true},
		{name: "missing trace id is generated", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenHeader string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenHeader = r.Header.Get(TraceIDHeader)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.incoming != "" {
				req.Header.Set(TraceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			TraceID(logger.Nop())(next).ServeHTTP(rr, req)

			got := rr.Header().Get(TraceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seenHeader, "downstream sees the same trace id")
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-42")

	TraceID(log)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

// ── Logging ──────────────────────────────────────────────────────────────────

func TestLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("12345"))
	})

	req := httptest.NewRequest(http.MethodPost, "/items?x=1", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	Logging(next).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/items?x=1", entry["uri"])
	assert.Equal(t, "POST", entry["method"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ab"))

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 2, w.size)
}

// ── RequireUserID ────────────────────────────────────────────────────────────

func TestRequireUserID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{name: "valid id", header: "7", wantStatus: http.StatusOK, wantUserID: 7},
		{name: "missing header", wantStatus: http.StatusBadRequest},
		{name: "zero", header: "0", wantStatus: http.StatusBadRequest},
		{name: "negative", header: "-3", wantStatus: http.StatusBadRequest},
		{name: "not a number", header: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			RequireUserID(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
				return
			}
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}

// ── RateLimit ────────────────────────────────────────────────────────────────

func TestRateLimit_BurstThenReject(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0.001, 2)(next)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_PerClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0.001, 1)(next)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, addr)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0, 0)(next)

	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	now = now.Add(limiterIdleTTL + time.Second)
	require.True(t, l.Allow("b"))

	_, stillThere := l.clients["a"]
	assert.False(t, stillThere)
}

// ── CheckHTTPMethod / NotFound ───────────────────────────────────────────────

func TestCheckHTTPMethod_UnsupportedMethodIs404(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/users/{userId}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(NotFound)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/1", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeError(t, rr))
}

// ── Deadline ─────────────────────────────────────────────────────────────────

func TestDeadline_SetsContextDeadline(t *testing.T) {
	var (
		hasDeadline bool
		remaining   time.Duration
	)
	h := Deadline(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var deadline time.Time
		deadline, hasDeadline = r.Context().Deadline()
		remaining = time.Until(deadline)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, hasDeadline)
	assert.LessOrEqual(t, remaining, time.Minute)
}

// An expired deadline leaves the response to the handler: no 504 is
// written on its behalf.
func TestDeadline_ExpiredContextHandledByHandler(t *testing.T) {
	h := Deadline(time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEqual(t, http.StatusGatewayTimeout, rr.Code)
	assert.Equal(t, "internal server error", decodeError(t, rr))
}

func TestDeadline_DisabledWhenZero(t *testing.T) {
	var hasDeadline bool
	h := Deadline(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, hasDeadline)
}
