package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const feedTemplate = `<?xml version="1.0" encoding="utf-8"?>
<project xmlns:dc="http://purl.org/dc/elements/1.1/">
  <title>Drupal core</title>
  <short_name>drupal</short_name>
  <api_version>%s</api_version>
  <releases>
    <release>
      <name>drupal %s</name>
      <version>%s</version>
      <status>published</status>
    </release>
  </releases>
</project>`

// ReleaseFeed serves one release per core branch under /drupal/<branch>.
// Unknown branches get a 404.
type ReleaseFeed struct {
	server   *httptest.Server
	requests atomic.Int32
}

// NewReleaseFeed starts a feed that answers versions[branch]. The server is
// closed when the test ends.
func NewReleaseFeed(t *testing.T, versions map[string]string) *ReleaseFeed {
	t.Helper()
	f := &ReleaseFeed{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		branch := strings.TrimPrefix(r.URL.Path, "/drupal/")
		version, ok := versions[branch]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = fmt.Fprintf(w, feedTemplate, branch, version, version)
	}))
	t.Cleanup(f.server.Close)
	return f
}

// URL is the base URL to configure the releases client with.
func (f *ReleaseFeed) URL() string {
	return f.server.URL + "/drupal"
}

// Requests returns how many requests the feed has answered.
func (f *ReleaseFeed) Requests() int {
	return int(f.requests.Load())
}
