package easyurl

import (
	"strconv"
	"strings"
)

// Format assembles c into a URL string.
//
// Scheme and user info are written only together with a host. Explicit
// overrides win over the derived values; a non-nil Query wins over Search.
func Format(c Components) string {
	var b strings.Builder

	if c.Hostname != "" || c.Host != "" {
		if c.Scheme != "" {
			b.WriteString(c.Scheme)

			if c.Slashed {
				b.WriteString("//")
			}
		}

		if auth, ok := formatAuth(c); ok {
			b.WriteString(auth)
			b.WriteByte('@')
		}

		b.WriteString(host(c))
	}

	b.WriteString(path(c))
	b.WriteString(c.Fragment)

	return b.String()
}

// BuildHost returns "hostname[:port]".
func BuildHost(hostname string, port int) string {
	if port <= 0 {
		return hostname
	}

	return hostname + ":" + strconv.Itoa(port)
}

// BuildPath returns pathname followed by search.
func BuildPath(pathname, search string) string {
	return pathname + search
}

func formatAuth(c Components) (string, bool) {
	if c.Auth != "" {
		return c.Auth, true
	}

	return FormatAuth(Auth{User: c.User, Password: c.Password})
}

func host(c Components) string {
	return csel(c.Host != "", c.Host, BuildHost(c.Hostname, c.Port))
}

func search(c Components) string {
	if c.Query != nil {
		return FormatQuery(c.Query)
	}

	return c.Search
}

func path(c Components) string {
	if c.Path != "" {
		return c.Path
	}

	return BuildPath(c.Pathname, search(c))
}
