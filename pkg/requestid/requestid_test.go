package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrcvr/onboardmail/pkg/requestid"
)

func serve(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		r.Header.Set(requestid.Header, header)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return seen, w
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when header missing", func(t *testing.T) {
		t.Parallel()

		seen, w := serve(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(requestid.Header))
	})

	t.Run("reuses valid header", func(t *testing.T) {
		t.Parallel()

		seen, w := serve(t, "trace_abc-123")
		assert.Equal(t, "trace_abc-123", seen)
		assert.Equal(t, "trace_abc-123", w.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid header", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 129)} {
			seen, _ := serve(t, bad)
			assert.NotEqual(t, bad, seen)
			assert.True(t, requestid.Valid(seen))
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	_, ok := requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)

	attr, ok := requestid.LoggerExtractor()(requestid.WithContext(context.Background(), "id-1"))
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "id-1", attr.Value.String())
}
