// Package middleware contains http middlewares of quill api.
package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Decentr-net/quill/internal/cache"
)

// Cached caches successful responses of handler in storage for ttl. Request URI is used as a key.
func Cached(ttl time.Duration, storage cache.Storage, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := storage.Get(r.Context(), r.RequestURI); content != nil {
			contentType, body := splitContent(content)
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			_, _ = w.Write(body)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(r.Context(), r.RequestURI, joinContent(c.Header().Get("Content-Type"), content), ttl)
		}

		_, _ = w.Write(content)
	}
}

func joinContent(contentType string, body []byte) []byte {
	out := make([]byte, 0, len(contentType)+1+len(body))
	out = append(out, contentType...)
	out = append(out, '\n')

	return append(out, body...)
}

func splitContent(b []byte) (string, []byte) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return "", b
	}

	return string(b[:i]), b[i+1:]
}
