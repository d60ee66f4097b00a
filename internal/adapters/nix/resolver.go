package nix

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	githubAPIBase     = "https://api.github.com"
	httpClientTimeout = 30 * time.Second
)

// Resolver implements ports.InputResolver using the GitHub commits API
// with a local pin cache.
type Resolver struct {
	cacheDir   string
	apiBase    string
	httpClient *http.Client
}

// NewResolver creates a Resolver with the default cache location.
func NewResolver() (*Resolver, error) {
	return NewResolverWithClient(domain.DefaultPinCachePath(), &http.Client{
		Timeout: httpClientTimeout,
	})
}

// NewResolverWithClient creates a Resolver with a custom cache path and
// http client. Used by tests and the daemon.
func NewResolverWithClient(path string, client *http.Client) (*Resolver, error) {
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPinCacheCreateFailed.Error())
	}

	return &Resolver{
		cacheDir:   cleanPath,
		apiBase:    githubAPIBase,
		httpClient: client,
	}, nil
}

// Resolve pins an input source to an immutable revision. Locators that
// already carry a full revision resolve to themselves without touching
// the network or the cache.
func (r *Resolver) Resolve(ctx context.Context, input domain.InputSource) (domain.Pin, error) {
	loc, err := ParseLocator(input.Locator)
	if err != nil {
		return domain.Pin{}, zerr.With(err, "input", input.Name)
	}

	if IsRevision(loc.Ref) {
		// Revisions compare and render case-insensitively on GitHub;
		// store the canonical lower-case form so shell IDs and flake
		// references stay stable.
		return domain.Pin{
			Input:    input.Name,
			Locator:  input.Locator,
			Revision: strings.ToLower(loc.Ref),
		}, nil
	}

	cachePath := r.cachePath(input.Locator)
	if pin, err := r.loadFromCache(cachePath, input); err == nil {
		return pin, nil
	}

	revision, err := r.queryCommit(ctx, loc)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrInputResolutionFailed.Error())
		return domain.Pin{}, zerr.With(wrapped, "input", input.Name)
	}

	pin := domain.Pin{
		Input:    input.Name,
		Locator:  input.Locator,
		Revision: revision,
	}

	// Cache write failures are not fatal: the pin is still valid.
	_ = r.saveToCache(cachePath, pin)

	return pin, nil
}

// pinCacheEntry is the on-disk format of one cached pin.
type pinCacheEntry struct {
	Pin       domain.Pin `json:"pin"`
	Timestamp time.Time  `json:"timestamp"`
}

// cachePath derives the cache file for a locator from its hash.
func (r *Resolver) cachePath(locator string) string {
	hash := sha256.Sum256([]byte(locator))
	return filepath.Join(r.cacheDir, hex.EncodeToString(hash[:])+".json")
}

func (r *Resolver) loadFromCache(path string, input domain.InputSource) (domain.Pin, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Pin{}, domain.ErrCacheMiss
		}
		return domain.Pin{}, zerr.Wrap(err, domain.ErrPinCacheReadFailed.Error())
	}

	var entry pinCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.Pin{}, zerr.Wrap(err, domain.ErrPinCacheReadFailed.Error())
	}

	// The cache is keyed by locator; the input name is whatever the
	// current manifest calls it.
	entry.Pin.Input = input.Name

	return entry.Pin, nil
}

func (r *Resolver) saveToCache(path string, pin domain.Pin) error {
	entry := pinCacheEntry{Pin: pin, Timestamp: time.Now()}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrPinCacheWriteFailed.Error())
	}

	if err := atomicWriteFile(path, data, "pin-cache-*.json"); err != nil {
		return zerr.Wrap(err, domain.ErrPinCacheWriteFailed.Error())
	}

	return nil
}

// commitResponse is the subset of the GitHub commits API response we use.
type commitResponse struct {
	SHA string `json:"sha"`
}

// queryCommit asks the GitHub API for the commit a ref currently points
// at. An empty ref queries HEAD of the default branch.
func (r *Resolver) queryCommit(ctx context.Context, loc Locator) (string, error) {
	ref := loc.Ref
	if ref == "" {
		ref = "HEAD"
	}

	url := fmt.Sprintf("%s/repos/%s/%s/commits/%s", r.apiBase, loc.Owner, loc.Repo, ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInputAPIRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInputAPIRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrInputAPIRequestFailed, "status_code", resp.StatusCode)
		apiErr = zerr.With(apiErr, "owner", loc.Owner)
		apiErr = zerr.With(apiErr, "repo", loc.Repo)
		return "", zerr.With(apiErr, "ref", ref)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInputAPIRequestFailed.Error())
	}

	var commit commitResponse
	if err := json.Unmarshal(body, &commit); err != nil {
		return "", zerr.Wrap(err, domain.ErrInputAPIParseFailed.Error())
	}
	if commit.SHA == "" {
		return "", zerr.With(domain.ErrInputAPIParseFailed, "ref", ref)
	}

	return commit.SHA, nil
}

// atomicWriteFile writes data through a temp file and renames it into
// place so readers never observe a partial file.
func atomicWriteFile(path string, data []byte, tmpPattern string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
