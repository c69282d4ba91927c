package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:   "fail",
			err:    errors.New("connection refused"),
			status: http.StatusServiceUnavailable,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			h := Handler(time.Second,
				SubjectPinger("ledger", func(ctx context.Context) error { return nil }),
				SubjectPinger("cache", func(ctx context.Context) error { return tc.err }),
			)

			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.status, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, "dev", resp.Version)

			if tc.err != nil {
				require.Equal(t, map[string]string{"cache": tc.err.Error()}, resp.Errors)
			} else {
				require.Empty(t, resp.Errors)
			}
		})
	}
}
