package ports

// Fingerprinter computes content fingerprints for change detection.
type Fingerprinter interface {
	// FingerprintDir hashes the locale files in a folder. Two calls over
	// unchanged content return the same fingerprint.
	FingerprintDir(folder string) (string, error)
}
