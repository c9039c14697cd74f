package easyurl

import (
	"regexp"
	"strconv"
	"strings"
)

type (
	// Components is a decomposed URL.
	//
	// Empty strings and zero Port mean the component is absent.
	// Scheme is lower case and includes the trailing ':'.
	// Pathname starts with '/', Fragment starts with '#'.
	// User, Password and Query are stored decoded.
	//
	// Host, Path, Auth and Search are explicit overrides of the values
	// otherwise derived from the canonical fields. They are never set by
	// Tokenize or Resolve.
	Components struct {
		Scheme   string
		Slashed  bool
		User     string
		Password string
		Hostname string
		Port     int
		Pathname string
		Query    Query
		Fragment string

		Host   string
		Path   string
		Auth   string
		Search string
	}
)

// Groups: 1 scheme, 2 slashes, 3 auth, 4 hostname, 5 port, 6 pathname,
// 7 search, 8 fragment.
// Scheme is limited to 6 letters so that "user:pass" or "localhost:80"
// are not taken for one. The middle groups are lazy so hostname stops at
// the first delimiter the rest of the pattern can consume.
var pattern = regexp.MustCompile(`(?i)^(?:([a-z]{1,6}:)(//)?)?(?:([^/@]*?)@)?(.*?)(?::([0-9]+))?(/[^?]*?)?(\?[^#]*?)?(#.*)?$`)

const (
	grpScheme = 1 + iota
	grpSlashes
	grpAuth
	grpHostname
	grpPort
	grpPathname
	grpSearch
	grpFragment
)

// Tokenize splits url into its components without resolving it.
// A port which is zero or does not fit an int is dropped.
// The pattern fails only if a line break ends up outside of the path
// and search, like in "a\nb".
func Tokenize(url string) (c Components, err error) {
	m := pattern.FindStringSubmatch(url)
	if m == nil {
		return c, malformed(url)
	}

	c.Scheme = strings.ToLower(m[grpScheme])
	c.Slashed = c.Scheme != "" && m[grpSlashes] != ""
	c.Hostname = m[grpHostname]
	c.Port = parsePort(m[grpPort])
	c.Pathname = m[grpPathname]
	c.Fragment = m[grpFragment]

	if auth := m[grpAuth]; auth != "" {
		a, err := ParseAuth(auth)
		if err != nil {
			return Components{}, err
		}

		c.User, c.Password = a.User, a.Password
	}

	c.Query, err = ParseQuery(m[grpSearch])
	if err != nil {
		return Components{}, err
	}

	return c, nil
}

func parsePort(s string) int {
	if s == "" || !decimals.wide().all(s) {
		return 0
	}

	p, err := strconv.Atoi(s)
	if err != nil || p <= 0 {
		return 0
	}

	return p
}
