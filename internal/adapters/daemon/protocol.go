package daemon

import "go.iioon.dev/iioon/internal/core/domain"

// JSON-RPC method names served by the daemon.
const (
	methodPing     = "ping"
	methodStatus   = "status"
	methodResolve  = "resolve"
	methodShutdown = "shutdown"
)

type pingResult struct {
	IdleRemainingSeconds int64 `json:"idleRemainingSeconds"`
}

type statusResult struct {
	Running              bool  `json:"running"`
	PID                  int   `json:"pid"`
	UptimeSeconds        int64 `json:"uptimeSeconds"`
	LastActivityUnix     int64 `json:"lastActivityUnix"`
	IdleRemainingSeconds int64 `json:"idleRemainingSeconds"`
}

type resolveParams struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
}

type resolveResult struct {
	Pin    domain.Pin `json:"pin"`
	Cached bool       `json:"cached"`
}

type shutdownResult struct {
	Stopped bool `json:"stopped"`
}
