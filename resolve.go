package easyurl

import "strings"

// IsRelative reports whether tokenized c is to be resolved against a base.
//
// This is a narrow heuristic, not RFC 3986 reference detection: c is
// relative if it has no scheme, no user info and no port. A hostname alone
// does not make it absolute, because "dir/file" tokenizes with "dir" as the
// hostname.
func IsRelative(c Components) bool {
	return c.Scheme == "" && c.User == "" && c.Password == "" && c.Port == 0
}

// Resolve merges relative ref into base and returns a new absolute set.
//
// The hostname of ref is its first path segment. The last segment of the
// base pathname is replaced by the ref pathname. Dot segments are not
// normalized. Scheme, user info, hostname and port come from base, query
// and fragment from ref.
func Resolve(ref, base Components) Components {
	r := ref
	r.Query = ref.Query.Clone()

	p := ref.Hostname + ref.Pathname
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	if base.Pathname != "" {
		dir := strings.LastIndexByte(base.Pathname, '/')
		p = base.Pathname[:max(dir, 0)] + p
	}

	r.Pathname = p

	r.Scheme = base.Scheme
	r.Slashed = base.Slashed
	r.User = base.User
	r.Password = base.Password
	r.Hostname = base.Hostname
	r.Port = base.Port

	return r
}
