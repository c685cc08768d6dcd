// Package release asks GitHub whether a newer flowsmith release exists.
//
// The check is read-only: flowsmith never replaces its own binary.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Repo is the GitHub repository releases are published from.
const Repo = "HendryAvila/flowsmith"

const defaultTimeout = 10 * time.Second

// Info holds the fields we read from a GitHub release.
type Info struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result is the outcome of a version check.
type Result struct {
	Current         string `json:"current"`
	Latest          string `json:"latest"`
	UpdateAvailable bool   `json:"update_available"`
	URL             string `json:"url,omitempty"`
}

// Checker queries one releases endpoint.
type Checker struct {
	Endpoint string
	Client   *http.Client
}

// NewChecker returns a Checker for the public GitHub API.
func NewChecker() *Checker {
	return &Checker{
		Endpoint: "https://api.github.com/repos/" + Repo + "/releases/latest",
		Client:   &http.Client{Timeout: defaultTimeout},
	}
}

// Check compares current against the latest published release.
func (c *Checker) Check(ctx context.Context, current string) (Result, error) {
	res := Result{Current: Normalize(current)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return res, fmt.Errorf("release: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "flowsmith/"+res.Current)

	resp, err := c.Client.Do(req)
	if err != nil {
		return res, fmt.Errorf("release: query %s: %w", c.Endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("release: GitHub API returned %d", resp.StatusCode)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return res, fmt.Errorf("release: decode: %w", err)
	}

	res.Latest = Normalize(info.TagName)
	res.URL = info.HTMLURL
	res.UpdateAvailable = Newer(res.Current, res.Latest)
	return res, nil
}

// Normalize strips one leading "v".
func Normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// Newer reports whether latest is a higher major.minor.patch than
// current. Development builds never report an update.
func Newer(current, latest string) bool {
	if current == "" || latest == "" || current == "dev" {
		return false
	}
	c, l := parts(current), parts(latest)
	for i := range c {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

// parts reads up to three numeric components; a pre-release suffix such
// as "-rc1" is ignored.
func parts(v string) [3]int {
	var out [3]int
	for i, p := range strings.SplitN(v, ".", 3) {
		n := 0
		for _, ch := range p {
			if ch < '0' || ch > '9' {
				break
			}
			n = n*10 + int(ch-'0')
		}
		out[i] = n
	}
	return out
}
