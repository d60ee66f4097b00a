package daemon

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sourcegraph/jsonrpc2"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Server serves the daemon's JSON-RPC methods over a Unix domain socket.
type Server struct {
	lifecycle *Lifecycle
	cache     *PinCache
	resolver  ports.InputResolver
	logger    ports.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[*jsonrpc2.Conn]struct{}
}

// NewServer creates a daemon server. The resolver handles cache misses.
func NewServer(lifecycle *Lifecycle, resolver ports.InputResolver, logger ports.Logger) *Server {
	return &Server{
		lifecycle: lifecycle,
		cache:     NewPinCache(),
		resolver:  resolver,
		logger:    logger,
		conns:     make(map[*jsonrpc2.Conn]struct{}),
	}
}

// Serve listens on the daemon socket under root until the context is
// cancelled or the idle timeout fires.
func (s *Server) Serve(ctx context.Context, root string) error {
	socketPath := filepath.Join(root, domain.DefaultDaemonSocketPath())

	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on daemon socket")
	}
	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}

	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	pidPath := filepath.Join(root, domain.DefaultDaemonPIDPath())
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), domain.PrivateFilePerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to write pid file")
	}

	defer func() {
		_ = os.Remove(socketPath)
		_ = os.Remove(pidPath)
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.acceptLoop(ctx, lis)
	}()

	select {
	case <-ctx.Done():
		s.close()
		return ctx.Err()
	case <-s.lifecycle.ShutdownChan():
		s.logger.Info("daemon shutting down")
		s.close()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) acceptLoop(ctx context.Context, lis net.Listener) error {
	for {
		conn, err := lis.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-s.lifecycle.ShutdownChan():
				return nil
			default:
				return zerr.Wrap(err, "accept failed")
			}
		}

		stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{})
		rpcConn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))

		s.mu.Lock()
		s.conns[rpcConn] = struct{}{}
		s.mu.Unlock()

		go func() {
			<-rpcConn.DisconnectNotify()
			s.mu.Lock()
			delete(s.conns, rpcConn)
			s.mu.Unlock()
		}()
	}
}

func (s *Server) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		_ = s.listener.Close()
	}
	for conn := range s.conns {
		_ = conn.Close()
	}
}

func (s *Server) handle(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	s.lifecycle.ResetTimer()

	switch req.Method {
	case methodPing:
		return pingResult{
			IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		}, nil

	case methodStatus:
		return statusResult{
			Running:              true,
			PID:                  os.Getpid(),
			UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
			LastActivityUnix:     s.lifecycle.LastActivity().Unix(),
			IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		}, nil

	case methodResolve:
		return s.handleResolve(ctx, req)

	case methodShutdown:
		s.lifecycle.Shutdown()
		return shutdownResult{Stopped: true}, nil

	default:
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: "unknown method " + req.Method,
		}
	}
}

func (s *Server) handleResolve(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "missing params"}
	}

	var params resolveParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}

	if pin, ok := s.cache.Get(params.Locator); ok {
		return resolveResult{Pin: pin, Cached: true}, nil
	}

	pin, err := s.resolver.Resolve(ctx, domain.InputSource{
		Name:    params.Name,
		Locator: params.Locator,
	})
	if err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()}
	}

	s.cache.Set(params.Locator, pin)
	return resolveResult{Pin: pin, Cached: false}, nil
}
