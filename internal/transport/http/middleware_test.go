package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFrom(r.Context())
		require.True(t, ok)
		seen = id
	})

	rr := httptest.NewRecorder()
	RequestID()(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get("X-Request-Id"))
}

func TestRequestIDHonorsIncomingHeader(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := RequestIDFrom(r.Context())
		assert.Equal(t, "abc-123", id)
	})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	RequestID()(inner).ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestLoggingRecordsStatusAndPath(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	Logging(log)(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/activities/Chess Club/signup", fields["path"])
}

func TestLoggingDefaultsToOKStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	Logging(log)(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
}

func TestCORSSetsHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	CORS("http://localhost:5173")(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCORSShortCircuitsPreflight(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rr := httptest.NewRecorder()
	CORS("*")(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/activities", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.False(t, called)
}

func TestChainOrdersOutermostFirst(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	rr := httptest.NewRecorder()
	Chain(inner, mark("outer"), mark("inner")).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
