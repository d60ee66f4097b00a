package domain

import "path/filepath"

const (
	// IioonDirName is the name of the internal workspace directory.
	IioonDirName = ".iioon"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// InputsDirName is the name of the input pin cache directory.
	InputsDirName = "inputs"

	// EnvDirName is the name of the environment cache directory.
	EnvDirName = "environments"

	// DaemonDirName is the name of the daemon runtime directory.
	DaemonDirName = "daemon"

	// StoreDirName is the name of the generation info store directory.
	StoreDirName = "store"

	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "iioon.yaml"

	// DefaultShellFileName is the shell definition file used when the
	// manifest does not name one.
	DefaultShellFileName = "shell.yaml"

	// DefaultGenFileName is the default output path for generated accessors.
	DefaultGenFileName = "locales.gen.go"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm is the permission for the daemon socket (rw-------).
	SocketPerm = 0o600
)

// DefaultPinCachePath returns the default path for the input pin cache.
func DefaultPinCachePath() string {
	return filepath.Join(IioonDirName, CacheDirName, InputsDirName)
}

// DefaultEnvCachePath returns the default path for the environment cache.
func DefaultEnvCachePath() string {
	return filepath.Join(IioonDirName, CacheDirName, EnvDirName)
}

// DefaultStorePath returns the default path for the generation info store.
func DefaultStorePath() string {
	return filepath.Join(IioonDirName, StoreDirName)
}

// DefaultDaemonSocketPath returns the default path for the daemon socket.
func DefaultDaemonSocketPath() string {
	return filepath.Join(IioonDirName, DaemonDirName, "daemon.sock")
}

// DefaultDaemonPIDPath returns the default path for the daemon PID file.
func DefaultDaemonPIDPath() string {
	return filepath.Join(IioonDirName, DaemonDirName, "daemon.pid")
}

// DefaultDaemonLogPath returns the default path for the daemon log.
func DefaultDaemonLogPath() string {
	return filepath.Join(IioonDirName, DaemonDirName, "daemon.log")
}
