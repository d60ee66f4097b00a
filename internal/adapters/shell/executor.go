// Package shell spawns processes inside materialized shell environments.
package shell

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"go.iioon.dev/iioon/internal/core/domain"
	"go.iioon.dev/iioon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Process represents a running command.
type Process interface {
	Wait() error
	Resize(rows, cols int) error
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// Let the copy loop drain what the process left in the PTY buffer.
	<-p.ioDone

	return err
}

func (p *ptyProcess) Resize(rows, cols int) error {
	if rows > math.MaxUint16 || cols > math.MaxUint16 || rows < 0 || cols < 0 {
		return errors.New("terminal size out of bounds")
	}

	return pty.Setsize(p.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Executor implements ports.ShellRunner using os/exec and a PTY.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes command inside the environment and streams its combined
// output to stdout. The PTY merges the command's stdout and stderr.
func (e *Executor) Run(ctx context.Context, command, env []string, dir string, stdout io.Writer) error {
	proc, err := e.start(ctx, command, env, dir, stdout)
	if err != nil {
		return err
	}
	if proc == nil {
		// Empty command.
		return nil
	}

	if err := proc.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// Enter spawns the user's shell inside the environment, wired to stdin
// and stdout through a PTY, and blocks until the shell exits. When stdin
// is a terminal it is switched to raw mode for the duration and the PTY
// tracks the terminal's size.
func (e *Executor) Enter(
	ctx context.Context,
	desc domain.ShellDescriptor,
	env []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	if desc.MOTD != "" {
		_, _ = io.WriteString(stdout, desc.MOTD+"\n")
	}

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	cmdEnv := resolveEnvironment(os.Environ(), env)
	// The spawned shell keeps its own identity.
	cmdEnv = append(cmdEnv, "SHELL="+shellPath)

	cmd := exec.CommandContext(ctx, shellPath) //nolint:gosec // user's own shell
	cmd.Env = cmdEnv

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEnterFailed.Error())
	}

	proc := &ptyProcess{cmd: cmd, ptmx: ptmx, ioDone: copyOutput(ptmx, stdout)}

	if restore, cleanup := wireTerminal(stdin, proc); restore != nil {
		defer restore()
		defer cleanup()
	}

	go func() {
		_, _ = io.Copy(ptmx, stdin)
	}()

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The user exited their shell with a non-zero status. Not an
			// entry failure.
			e.logger.Warn("shell exited with status " + exitErr.String())
			return nil
		}
		return zerr.Wrap(err, domain.ErrEnterFailed.Error())
	}

	return nil
}

func (e *Executor) start(ctx context.Context, command, env []string, dir string, stdout io.Writer) (Process, error) {
	if len(command) == 0 {
		return nil, nil
	}

	name := command[0]
	args := command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), env)

	// Resolve the executable against the merged PATH, not the host's.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = dir
	cmd.Env = cmdEnv

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to start pty")
	}

	return &ptyProcess{
		cmd:    cmd,
		ptmx:   ptmx,
		ioDone: copyOutput(ptmx, stdout),
	}, nil
}

// copyOutput drains the PTY into w from a goroutine and closes the
// returned channel once the PTY reaches EOF.
func copyOutput(ptmx *os.File, w io.Writer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { _ = ptmx.Close() }()
		_, _ = io.Copy(w, ptmx)
	}()
	return done
}

// wireTerminal puts a terminal stdin into raw mode and keeps the PTY
// sized to it. Both returned funcs are nil when stdin is not a terminal.
func wireTerminal(stdin io.Reader, proc *ptyProcess) (restore, cleanup func()) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, nil
	}

	oldState, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, nil
	}

	resize := func() {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			_ = proc.Resize(h, w)
		}
	}
	resize()

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	go func() {
		for range winch {
			resize()
		}
	}()

	restore = func() { _ = term.Restore(int(f.Fd()), oldState) }
	cleanup = func() {
		signal.Stop(winch)
		close(winch)
	}
	return restore, cleanup
}

// allowListedEnvVars are the host environment variables a spawned shell
// may inherit. Everything else comes from the materialized environment,
// keeping it reproducible across machines.
var allowListedEnvVars = map[string]struct{}{
	"HOME": {},
	"TERM": {},
	"USER": {},
	"PATH": {},
}

// resolveEnvironment merges the materialized environment over the
// allow-listed host environment. The materialized PATH is prepended to
// the host PATH so environment tools win without hiding system ones.
func resolveEnvironment(sysEnv, shellEnv []string) []string {
	envMap := filterSystemEnv(sysEnv)
	applyShellEnv(envMap, shellEnv)

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	return envMap
}

func applyShellEnv(envMap map[string]string, shellEnv []string) {
	for _, entry := range shellEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}
}

// lookPath searches for an executable in the directories named by the
// PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means ".".
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
