package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no iioon.yaml can be located.
	ErrManifestNotFound = zerr.New("could not find iioon.yaml")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrShellDefNotFound is returned when the shell definition file is missing.
	ErrShellDefNotFound = zerr.New("could not find shell definition file")

	// ErrShellDefParseFailed is returned when the shell definition cannot be parsed.
	ErrShellDefParseFailed = zerr.New("failed to parse shell definition")

	// ErrMissingPackageInput is returned when the manifest declares no package collection input.
	ErrMissingPackageInput = zerr.New("manifest must declare a 'nixpkgs' input")

	// ErrEmptyInputLocator is returned when an input is declared without a locator.
	ErrEmptyInputLocator = zerr.New("input locator cannot be empty")

	// ErrInvalidLocator is returned when an input locator is not a recognized flake reference.
	ErrInvalidLocator = zerr.New("invalid input locator, expected format: github:owner/repo[/ref]")

	// ErrInvalidPlatform is returned when a system token is not an arch-os pair.
	ErrInvalidPlatform = zerr.New("invalid platform token, expected format: arch-os")

	// ErrInputResolutionFailed is returned when an input cannot be pinned to a revision.
	ErrInputResolutionFailed = zerr.New("failed to resolve input")

	// ErrInputAPIRequestFailed is returned when the upstream commit lookup fails.
	ErrInputAPIRequestFailed = zerr.New("failed to query upstream for input revision")

	// ErrInputAPIParseFailed is returned when the upstream response cannot be parsed.
	ErrInputAPIParseFailed = zerr.New("failed to parse upstream response")

	// ErrPinCacheCreateFailed is returned when the input pin cache directory cannot be created.
	ErrPinCacheCreateFailed = zerr.New("failed to create input pin cache directory")

	// ErrPinCacheReadFailed is returned when reading from the input pin cache fails.
	ErrPinCacheReadFailed = zerr.New("failed to read from input pin cache")

	// ErrPinCacheWriteFailed is returned when writing to the input pin cache fails.
	ErrPinCacheWriteFailed = zerr.New("failed to write to input pin cache")

	// ErrShellBuildFailed is returned when materializing a shell environment fails.
	ErrShellBuildFailed = zerr.New("failed to build shell environment")

	// ErrShellNotFound is returned when no shell exists for the requested platform.
	ErrShellNotFound = zerr.New("no shell for requested platform")

	// ErrEnterFailed is returned when spawning an interactive shell fails.
	ErrEnterFailed = zerr.New("failed to enter shell")

	// ErrLocaleFolderNotFound is returned when the locale folder does not exist.
	ErrLocaleFolderNotFound = zerr.New("locale folder does not exist")

	// ErrNoLocaleFiles is returned when the locale folder holds no TOML files.
	ErrNoLocaleFiles = zerr.New("no locale files found")

	// ErrLocaleReadFailed is returned when a locale file cannot be read.
	ErrLocaleReadFailed = zerr.New("failed to read locale file")

	// ErrLocaleParseFailed is returned when a locale file cannot be parsed.
	ErrLocaleParseFailed = zerr.New("failed to parse locale file")

	// ErrUnknownFallback is returned when the configured fallback language has no locale file.
	ErrUnknownFallback = zerr.New("fallback language does not exist")

	// ErrUnknownLanguage is returned when a requested language has no locale file.
	ErrUnknownLanguage = zerr.New("unknown language")

	// ErrMessageNotFound is returned when a message key resolves in no language.
	ErrMessageNotFound = zerr.New("message not found")

	// ErrCatalogInconsistent is returned by check when error-severity diagnostics exist.
	ErrCatalogInconsistent = zerr.New("locale catalog is inconsistent")

	// ErrGenerateFailed is returned when accessor generation fails.
	ErrGenerateFailed = zerr.New("failed to generate accessors")

	// ErrFingerprintFailed is returned when a folder fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint folder")

	// ErrWatcherAlreadyStarted is returned when Start is called on a running watcher.
	ErrWatcherAlreadyStarted = zerr.New("watcher already started")

	// ErrStoreCreateFailed is returned when the generation info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when reading from the generation info store fails.
	ErrStoreReadFailed = zerr.New("failed to read from store")

	// ErrStoreWriteFailed is returned when writing to the generation info store fails.
	ErrStoreWriteFailed = zerr.New("failed to write to store")

	// ErrStoreUnmarshalFailed is returned when a stored generation record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to decode store entry")

	// ErrDaemonSpawnFailed is returned when the daemon process cannot be started.
	ErrDaemonSpawnFailed = zerr.New("failed to spawn daemon")

	// ErrDaemonNotRunning is returned when a daemon command finds no running daemon.
	ErrDaemonNotRunning = zerr.New("daemon is not running")

	// ErrCacheMiss is returned when a requested item is not found in a cache.
	ErrCacheMiss = zerr.New("cache miss")
)
