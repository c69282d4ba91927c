package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/quill/internal/backend"
	"github.com/Decentr-net/quill/internal/cache/memory"
	"github.com/Decentr-net/quill/internal/health"
	"github.com/Decentr-net/quill/internal/ledger/irys"
	"github.com/Decentr-net/quill/internal/metrics"
	"github.com/Decentr-net/quill/internal/resolver"
	"github.com/Decentr-net/quill/internal/schema"
	"github.com/Decentr-net/quill/internal/server"
	"github.com/Decentr-net/quill/internal/session"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	AppName    string `long:"app.name" env:"APP_NAME" default:"quill" description:"application name tag of records"`
	AppVersion string `long:"app.version" env:"APP_VERSION" default:"0.0.1" description:"application version tag of records"`

	Ledger       string `long:"ledger" env:"LEDGER" default:"irys" description:"ledger backend" choice:"memory" choice:"badger" choice:"postgres" choice:"irys"`
	Address      string `long:"ledger.address" env:"LEDGER_ADDRESS" default:"local" description:"uploader address of local ledgers"`
	Balance      int64  `long:"ledger.balance" env:"LEDGER_BALANCE" default:"-1" description:"wallet balance of local ledgers, -1 means unlimited"`
	PricePerByte uint64 `long:"ledger.price-per-byte" env:"LEDGER_PRICE_PER_BYTE" default:"0" description:"upload price of local ledgers"`

	BadgerDir string `long:"badger.dir" env:"BADGER_DIR" default:"data" description:"badger database directory, empty means in-memory"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	IrysNode    string        `long:"irys.node" env:"IRYS_NODE" default:"https://node1.irys.xyz" description:"irys node url"`
	IrysGateway string        `long:"irys.gateway" env:"IRYS_GATEWAY" default:"https://gateway.irys.xyz" description:"irys gateway url"`
	IrysBundler string        `long:"irys.bundler" env:"IRYS_BUNDLER" default:"http://localhost:3001" description:"signing bundler proxy url"`
	IrysToken   string        `long:"irys.token" env:"IRYS_TOKEN" default:"ethereum" description:"payment token"`
	IrysTimeout time.Duration `long:"irys.timeout" env:"IRYS_TIMEOUT" default:"30s" description:"timeout for requests to irys"`

	Cache         string `long:"cache" env:"CACHE" default:"memory" description:"cache of bodies and responses" choice:"none" choice:"memory" choice:"redis"`
	RedisAddr     string `long:"redis.addr" env:"REDIS_ADDR" default:"localhost:6379" description:"redis address"`
	RedisPassword string `long:"redis.password" env:"REDIS_PASSWORD" description:"redis password"`
	RedisDB       int    `long:"redis.db" env:"REDIS_DB" default:"0" description:"redis database"`
	RedisPrefix   string `long:"redis.prefix" env:"REDIS_PREFIX" default:"quill:" description:"redis keys prefix"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Quill"
	parser.LongDescription = "Quill read api over the publishing ledger"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		version, _ := health.Version()
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          version,
			ServerName:       "quill",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := backend.Open(ctx, backendConfig(), metrics.New(prometheus.DefaultRegisterer))
	if err != nil {
		logrus.WithError(err).Fatal("failed to open backend")
	}
	defer b.Close() // nolint

	s, err := session.ConnectReader(ctx, schema.App{Name: opts.AppName, Version: opts.AppVersion}, b.Ledger)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to ledger")
	}
	defer s.Close()

	responses := b.Cache
	if responses == nil {
		responses = memory.NewStorage(ctx)
	}

	r := chi.NewMux()
	r.Get("/health", health.Handler(5*time.Second, b.Pingers...))
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		server.SetupRouter(resolver.New(s), responses, r, opts.RequestTimeout)
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server")
		}

		cancel()

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("quill unexpectedly closed")
	}
}

func backendConfig() backend.Config {
	return backend.Config{
		Ledger:                     opts.Ledger,
		Address:                    opts.Address,
		Balance:                    opts.Balance,
		PricePerByte:               opts.PricePerByte,
		BadgerDir:                  opts.BadgerDir,
		Postgres:                   opts.Postgres,
		PostgresMaxOpenConnections: opts.PostgresMaxOpenConnections,
		PostgresMaxIdleConnections: opts.PostgresMaxIdleConnections,
		PostgresMigrations:         opts.PostgresMigrations,
		Irys: irys.Config{
			NodeURL:    opts.IrysNode,
			GatewayURL: opts.IrysGateway,
			BundlerURL: opts.IrysBundler,
			Token:      opts.IrysToken,
			Timeout:    opts.IrysTimeout,
		},
		Cache:         opts.Cache,
		RedisAddr:     opts.RedisAddr,
		RedisPassword: opts.RedisPassword,
		RedisDB:       opts.RedisDB,
		RedisPrefix:   opts.RedisPrefix,
	}
}
