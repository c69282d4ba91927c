// Package health contains health checks of quill dependencies.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

var log = logrus.WithField("layer", "health").WithField("package", "health")

// Version returns service's version and commit.
func Version() (string, string) {
	return version, commit
}

// Pinger pings external service.
type Pinger interface {
	Ping(ctx context.Context) error
	// Name returns name of pinger
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) error {
	return p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps ping function with a name, e.g. ledger or cache ping.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Response ...
type Response struct {
	Version string            `json:"version"`
	Commit  string            `json:"commit"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Handler returns handler which pings every pinger concurrently.
// 503 is returned if any of them fails.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var (
			gr   errgroup.Group
			mu   sync.Mutex
			resp = Response{Version: version, Commit: commit}
		)

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				if err := v.Ping(ctx); err != nil {
					log.WithError(err).WithField("subject", v.Name()).Error("health check failed")

					mu.Lock()
					if resp.Errors == nil {
						resp.Errors = map[string]string{}
					}
					resp.Errors[v.Name()] = err.Error()
					mu.Unlock()
				}

				return nil
			})
		}

		_ = gr.Wait()

		w.Header().Set("Content-Type", "application/json")
		if len(resp.Errors) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		data, _ := json.Marshal(resp)
		w.Write(data) // nolint
	}
}
