// Package metrics contains prometheus instrumentation of ledger calls.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Decentr-net/quill/internal/ledger"
)

const namespace = "quill"

// Metrics holds ledger metrics.
type Metrics struct {
	Calls         *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	UploadedBytes prometheus.Counter
	Funded        prometheus.Counter
	Unresolved    prometheus.Counter
}

// New creates and registers metrics in reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_calls_total",
				Help:      "Total number of ledger calls",
			},
			[]string{"operation", "status"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ledger_call_duration_seconds",
				Help:      "Duration of ledger calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		UploadedBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_uploaded_bytes_total",
			Help:      "Total size of uploaded bodies",
		}),
		Funded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_funded_total",
			Help:      "Total amount funded for uploads",
		}),
		Unresolved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_unresolved_bodies_total",
			Help:      "Total number of bodies which were not resolved",
		}),
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	m.Calls.WithLabelValues(op, status).Inc()
	m.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

type reader struct {
	r ledger.Reader
	m *Metrics
}

type instrumented struct {
	reader
	w ledger.Writer
}

// Reader instruments read capability.
func (m *Metrics) Reader(r ledger.Reader) ledger.Reader {
	return reader{r: r, m: m}
}

// Ledger instruments full capability.
func (m *Metrics) Ledger(l ledger.Ledger) ledger.Ledger {
	return instrumented{reader: reader{r: l, m: m}, w: l}
}

func (r reader) Ping(ctx context.Context) error {
	return ledger.Ping(ctx, r.r)
}

func (r reader) QueryByIDs(ctx context.Context, ids []string) (_ []ledger.Record, err error) {
	defer func(start time.Time) { r.m.observe("query_by_ids", start, err) }(time.Now())
	return r.r.QueryByIDs(ctx, ids)
}

func (r reader) QueryByTags(ctx context.Context, filters []ledger.TagFilter, limit int) (_ []ledger.Record, err error) {
	defer func(start time.Time) { r.m.observe("query_by_tags", start, err) }(time.Now())
	return r.r.QueryByTags(ctx, filters, limit)
}

func (r reader) QueryPage(ctx context.Context, filters []ledger.TagFilter, limit int, cursor string) (_ *ledger.Page, err error) {
	defer func(start time.Time) { r.m.observe("query_page", start, err) }(time.Now())
	return r.r.QueryPage(ctx, filters, limit, cursor)
}

func (r reader) GetData(ctx context.Context, id string) (b []byte, err error) {
	defer func(start time.Time) {
		r.m.observe("get_data", start, err)
		if err == nil && b == nil {
			r.m.Unresolved.Inc()
		}
	}(time.Now())
	return r.r.GetData(ctx, id)
}

func (l instrumented) Upload(ctx context.Context, body []byte, tags ledger.Tags) (_ *ledger.Receipt, err error) {
	defer func(start time.Time) {
		l.m.observe("upload", start, err)
		if err == nil {
			l.m.UploadedBytes.Add(float64(len(body)))
		}
	}(time.Now())
	return l.w.Upload(ctx, body, tags)
}

func (l instrumented) Price(ctx context.Context, size int) (_ uint64, err error) {
	defer func(start time.Time) { l.m.observe("price", start, err) }(time.Now())
	return l.w.Price(ctx, size)
}

func (l instrumented) Fund(ctx context.Context, amount uint64) (err error) {
	defer func(start time.Time) {
		l.m.observe("fund", start, err)
		if err == nil {
			l.m.Funded.Add(float64(amount))
		}
	}(time.Now())
	return l.w.Fund(ctx, amount)
}

func (l instrumented) Owner(ctx context.Context, id string) (_ string, err error) {
	defer func(start time.Time) { l.m.observe("owner", start, err) }(time.Now())
	return l.w.Owner(ctx, id)
}
