//go:build integration
// +build integration

package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	ctx = context.Background()
	s   *Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
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

	port, err := c.MappedPort(ctx, "6379")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	s, err = New(ctx, fmt.Sprintf("%s:%d", host, port.Int()), "", 0, "test:")
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect")
	}

	return func() {
		_ = s.Close()
		c.Terminate(ctx)
	}
}

func TestStorage_GetSet(t *testing.T) {
	require.Nil(t, s.Get(ctx, "missing"))

	s.Set(ctx, "key", []byte("value"), time.Minute)
	require.Equal(t, []byte("value"), s.Get(ctx, "key"))

	s.Set(ctx, "short", []byte("value"), time.Second)
	time.Sleep(1500 * time.Millisecond)
	require.Nil(t, s.Get(ctx, "short"))
}

func TestStorage_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}
