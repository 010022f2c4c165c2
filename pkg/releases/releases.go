// Package releases looks up the latest Drupal core release from the
// drupal.org release-history feed.
package releases

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/beevik/etree"
)

// DefaultURL is the release-history feed for Drupal core.
const DefaultURL = "http://updates.drupal.org/release-history/drupal"

// DefaultTimeout bounds a lookup when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// versionPath selects the version of the first (latest) release.
const versionPath = "/project/releases/release[1]/version"

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches release information.
type Client struct {
	baseURL string
	http    Doer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the feed location.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient injects the HTTP capability.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// NewClient returns a Client for the drupal.org feed using an http.Client
// with DefaultTimeout unless options say otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the feed URL for a core branch.
func (c *Client) URL(coreBranch string) string {
	return c.baseURL + "/" + coreBranch
}

// LatestVersion returns the version string of the newest release on coreBranch.
//
// Transport failures and non-2xx responses are ErrNetwork, bodies that are
// not XML are ErrInvalidResponse and a valid feed without releases is
// ErrNoReleases.
func (c *Client) LatestVersion(ctx context.Context, coreBranch string) (string, error) {
	logger := logging.GetLogger("releases")
	url := c.URL(coreBranch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNetwork, "cannot build request for %s", url).
			WithDetail("url", url)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	logger.Debug().Str("url", url).Msg("Fetching release history")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNetwork, "release lookup failed for %s", url).
			WithDetail("url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrNetwork, "release lookup failed for %s: status %d", url, resp.StatusCode).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNetwork, "cannot read release history from %s", url).
			WithDetail("url", url)
	}

	version, err := ParseLatestVersion(body)
	if err != nil {
		return "", errors.Wrapf(err, errors.GetErrorCode(err), "unusable release history from %s", url).
			WithDetail("url", url)
	}

	logger.Info().Str("branch", coreBranch).Str("version", version).Msg("Found latest release")
	return version, nil
}

// ParseLatestVersion extracts the first release's version from a
// release-history document.
func ParseLatestVersion(body []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidResponse, "invalid release history document")
	}
	if doc.Root() == nil {
		return "", errors.New(errors.ErrInvalidResponse, "invalid release history document: no root element")
	}

	el := doc.FindElement(versionPath)
	if el == nil {
		return "", errors.New(errors.ErrNoReleases, "invalid response: latest Drupal release not found")
	}
	version := strings.TrimSpace(el.Text())
	if version == "" {
		return "", errors.New(errors.ErrNoReleases, "invalid response: latest Drupal release has no version")
	}
	return version, nil
}

// Static is a lookup that always answers with the same version, used when
// the version is pinned on the command line.
type Static string

// LatestVersion returns the pinned version.
func (s Static) LatestVersion(ctx context.Context, coreBranch string) (string, error) {
	if s == "" {
		return "", errors.Newf(errors.ErrNoReleases, "no release pinned for %s", coreBranch)
	}
	return string(s), nil
}
