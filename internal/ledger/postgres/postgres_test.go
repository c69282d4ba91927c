//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Decentr-net/quill/internal/ledger"
)

var (
	db  *sql.DB
	ctx = context.Background()
	l   *Ledger
)

func TestMain(m *testing.M) {
	shutdown := setup()

	l = New(db, "addr", ledger.NewLocalFunder(10, 1))

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM tag`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM record`)
	require.NoError(t, err)
}

func upload(t *testing.T, body string, tags ...ledger.Tag) *ledger.Receipt {
	r, err := l.Upload(ctx, []byte(body), tags)
	require.NoError(t, err)
	return r
}

func ids(r []ledger.Record) []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.ID
	}
	return out
}

func TestLedger_Ping(t *testing.T) {
	require.NoError(t, l.Ping(ctx))
}

func TestLedger_UploadGetData(t *testing.T) {
	defer cleanup(t)

	r := upload(t, "body", ledger.Tag{Name: "a", Value: "1"}, ledger.Tag{Name: "a", Value: "1"})

	b, err := l.GetData(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("body"), b)

	b, err = l.GetData(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, b)

	owner, err := l.Owner(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "addr", owner)

	_, err = l.Owner(ctx, "missing")
	require.True(t, errors.Is(err, ledger.ErrNotFound))

	rec, err := l.QueryByIDs(ctx, []string{r.ID})
	require.NoError(t, err)
	require.Len(t, rec, 1)
	assert.Equal(t, ledger.Tags{{Name: "a", Value: "1"}, {Name: "a", Value: "1"}}, rec[0].Tags)
	assert.Equal(t, r.Timestamp, rec[0].Timestamp)
}

func TestLedger_Query(t *testing.T) {
	defer cleanup(t)

	f := []ledger.TagFilter{{Name: "search", Values: []string{"yes"}}}

	a := upload(t, "", ledger.Tag{Name: "search", Value: "yes"}, ledger.Tag{Name: "author", Value: "1"})
	b := upload(t, "", ledger.Tag{Name: "search", Value: "yes"})
	upload(t, "", ledger.Tag{Name: "search", Value: "no"})
	c := upload(t, "", ledger.Tag{Name: "search", Value: "yes"})
	d := upload(t, "", ledger.Tag{Name: "search", Value: "yes"}, ledger.Tag{Name: "author", Value: "2"})

	p, err := l.QueryPage(ctx, f, 2, "")
	require.NoError(t, err)
	require.Equal(t, []string{d.ID, c.ID}, ids(p.Records()))

	p, err = l.QueryPage(ctx, f, 2, p.Cursor())
	require.NoError(t, err)
	require.Equal(t, []string{b.ID, a.ID}, ids(p.Records()))

	p, err = l.QueryPage(ctx, f, 2, p.Cursor())
	require.NoError(t, err)
	require.Empty(t, p.Edges)

	r, err := l.QueryByTags(ctx, append(f, ledger.TagFilter{Name: "author", Values: []string{"1", "2"}}), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID, a.ID}, ids(r))

	r, err = l.QueryByTags(ctx, []ledger.TagFilter{{Name: "author"}}, 0)
	require.NoError(t, err)
	assert.Empty(t, r)

	r, err = l.QueryByIDs(ctx, []string{a.ID, "missing", c.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID}, ids(r))
}

func TestLedger_Fund(t *testing.T) {
	p, err := l.Price(ctx, 8)
	require.NoError(t, err)
	require.NoError(t, l.Fund(ctx, p))
	require.True(t, errors.Is(l.Fund(ctx, p), ledger.ErrInsufficientBalance))
}
