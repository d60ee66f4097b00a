package daemon

import (
	"context"
	"net"
	"path/filepath"
	"time"

	"github.com/sourcegraph/jsonrpc2"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.DaemonClient over the daemon socket.
type Client struct {
	conn *jsonrpc2.Conn
}

// Dial connects to the daemon socket under root.
func Dial(ctx context.Context, root string) (*Client, error) {
	socketPath := filepath.Join(root, domain.DefaultDaemonSocketPath())

	var dialer net.Dialer
	netConn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDaemonNotRunning.Error())
	}

	stream := jsonrpc2.NewBufferedStream(netConn, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, noopHandler{})

	return &Client{conn: conn}, nil
}

type noopHandler struct{}

func (noopHandler) Handle(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) {}

// Ping checks that the daemon is alive and resets its idle timer.
func (c *Client) Ping(ctx context.Context) error {
	var result pingResult
	if err := c.conn.Call(ctx, methodPing, nil, &result); err != nil {
		return zerr.Wrap(err, "daemon ping failed")
	}
	return nil
}

// Status returns the daemon's current status.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	var result statusResult
	if err := c.conn.Call(ctx, methodStatus, nil, &result); err != nil {
		return nil, zerr.Wrap(err, "daemon status failed")
	}

	return &ports.DaemonStatus{
		Running:       result.Running,
		PID:           result.PID,
		Uptime:        time.Duration(result.UptimeSeconds) * time.Second,
		LastActivity:  time.Unix(result.LastActivityUnix, 0),
		IdleRemaining: time.Duration(result.IdleRemainingSeconds) * time.Second,
	}, nil
}

// ResolvePin resolves an input through the daemon's warm cache.
func (c *Client) ResolvePin(ctx context.Context, input domain.InputSource) (domain.Pin, error) {
	params := resolveParams{Name: input.Name, Locator: input.Locator}

	var result resolveResult
	if err := c.conn.Call(ctx, methodResolve, params, &result); err != nil {
		return domain.Pin{}, zerr.Wrap(err, domain.ErrInputResolutionFailed.Error())
	}
	return result.Pin, nil
}

// Shutdown requests a graceful daemon shutdown.
func (c *Client) Shutdown(ctx context.Context) error {
	var result shutdownResult
	if err := c.conn.Call(ctx, methodShutdown, nil, &result); err != nil {
		return zerr.Wrap(err, "daemon shutdown failed")
	}
	return nil
}

// Close releases the client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
