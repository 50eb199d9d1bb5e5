package server

import (
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/InventarioBot_Go/internal/inventory"
	"github.com/osse101/InventarioBot_Go/internal/store"
)

const (
	testTimeout = 2 * time.Second
	testTick    = 20 * time.Millisecond
)

func newTestServerOnFreePort(t *testing.T) *Server {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	path := filepath.Join(t.TempDir(), "inv.json")
	svc := inventory.NewService(store.NewFileStore(path), inventory.NewEngine(), nil, path)
	srv := NewServer(Options{Port: port}, svc)
	srv.httpServer.Addr = fmt.Sprintf("127.0.0.1:%d", port)
	return srv
}
