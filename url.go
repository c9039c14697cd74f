package easyurl

import (
	"strings"
)

// URL holds a decomposed URL and gives access to both its canonical and
// derived components. Derived getters (Auth, Host, Path, Search, Href)
// are computed on every call unless an explicit override was given to New.
// Setters of derived components decompose the value into canonical fields
// and drop the override.
//
// The zero value is an empty URL.
type URL struct {
	c    Components
	base *Components
}

// Parse parses href as an absolute URL.
func Parse(href string) (*URL, error) {
	return ParseRef(href, nil)
}

// MustParse calls Parse and panics if it returns an error.
func MustParse(href string) *URL {
	u, err := Parse(href)
	if err != nil {
		panic(err)
	}

	return u
}

// ParseRef parses href, resolving it against base if it is relative.
// base may be nil. It is kept for later SetHref calls.
func ParseRef(href string, base *URL) (*URL, error) {
	u := new(URL)

	if base != nil {
		b := base.Components()
		u.base = &b
	}

	err := u.SetHref(href)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// ParseRefString is ParseRef with base given as a string.
// Empty base means no base.
func ParseRefString(href, base string) (*URL, error) {
	if base == "" {
		return ParseRef(href, nil)
	}

	b, err := Parse(base)
	if err != nil {
		return nil, err
	}

	return ParseRef(href, b)
}

// New builds a URL from fields as is, without decoding anything.
// Auth, Host, Path and Search become explicit overrides.
// Pass without User is dropped.
func New(f Fields) *URL {
	u := &URL{c: Components{
		Scheme:   f.Protocol,
		Slashed:  f.SlashedProtocol,
		User:     f.User,
		Password: f.Pass,
		Hostname: f.Hostname,
		Port:     max(f.Port, 0),
		Pathname: f.Pathname,
		Query:    f.Query.Clone(),
		Fragment: f.Hash,

		Host:   f.Host,
		Path:   f.Path,
		Auth:   f.Auth,
		Search: f.Search,
	}}

	u.dropOrphan()

	return u
}

func parse(href string, base *Components) (Components, error) {
	c, err := Tokenize(href)
	if err != nil {
		return Components{}, err
	}

	if base == nil || !IsRelative(c) {
		return c, nil
	}

	return Resolve(c, *base), nil
}

// Components returns a copy of the held components.
func (u *URL) Components() Components {
	c := u.c
	c.Query = c.Query.Clone()

	return c
}

func (u *URL) String() string {
	return Format(u.c)
}

func (u *URL) Href() string { return u.String() }

// SetHref replaces all the components with the ones parsed from href,
// resolved against the base the URL was created with.
// Empty href resets the URL.
func (u *URL) SetHref(href string) error {
	if href == "" {
		u.c = Components{}
		return nil
	}

	c, err := parse(href, u.base)
	if err != nil {
		return err
	}

	u.c = c
	u.dropOrphan()

	return nil
}

// Scheme returns the lower case scheme with the trailing ':', "http:".
func (u *URL) Scheme() string { return u.c.Scheme }

// SetScheme sets the scheme. The trailing ':' is added if missing.
func (u *URL) SetScheme(s string) {
	if s != "" && !strings.HasSuffix(s, ":") {
		s += ":"
	}

	u.c.Scheme = strings.ToLower(s)
}

func (u *URL) Slashed() bool { return u.c.Slashed }

func (u *URL) SetSlashed(v bool) { u.c.Slashed = v }

func (u *URL) User() string { return u.c.User }

func (u *URL) Password() string { return u.c.Password }

func (u *URL) Hostname() string { return u.c.Hostname }

func (u *URL) Port() int { return u.c.Port }

func (u *URL) Pathname() string { return u.c.Pathname }

func (u *URL) SetPathname(p string) {
	u.flattenPath()
	u.c.Pathname = p
}

// Hash returns the fragment with the leading '#'.
func (u *URL) Hash() string { return u.c.Fragment }

// Auth returns the encoded "user[:password]".
func (u *URL) Auth() string {
	s, _ := formatAuth(u.c)
	return s
}

// Host returns "hostname[:port]".
func (u *URL) Host() string { return host(u.c) }

// Path returns pathname followed by the encoded search.
func (u *URL) Path() string { return path(u.c) }

// Search returns the encoded query with the leading '?', or "".
func (u *URL) Search() string { return search(u.c) }

// Query returns a copy of the decoded query.
func (u *URL) Query() Query { return u.c.Query.Clone() }

// Base returns a copy of the base the URL was resolved against, if any.
func (u *URL) Base() *URL {
	if u.base == nil {
		return nil
	}

	return &URL{c: *u.base}
}

// SetUser sets the decoded user name.
// Empty user drops the password too.
func (u *URL) SetUser(user string) {
	u.flattenAuth()
	u.c.User = user
	u.dropOrphan()
}

// SetPassword sets the decoded password. It is dropped if there is no user.
func (u *URL) SetPassword(pass string) {
	u.flattenAuth()
	u.c.Password = pass
	u.dropOrphan()
}

// SetAuth decodes "user[:password]" into User and Password.
func (u *URL) SetAuth(auth string) error {
	a, err := ParseAuth(auth)
	if err != nil {
		return err
	}

	u.c.Auth = ""
	u.c.User, u.c.Password = a.User, a.Password
	u.dropOrphan()

	return nil
}

func (u *URL) SetHostname(h string) {
	u.flattenHost()
	u.c.Hostname = h
}

// SetPort sets the port. Non-positive port removes it.
func (u *URL) SetPort(p int) {
	u.flattenHost()
	u.c.Port = max(p, 0)
}

// SetHost splits "hostname[:port]". A non-numeric port is left in the hostname.
func (u *URL) SetHost(h string) {
	u.c.Host = ""
	u.c.Hostname, u.c.Port = splitHost(h)
}

// SetPath splits "pathname[?search]" and decodes the search into Query.
func (u *URL) SetPath(p string) error {
	pathname, search, _ := strings.Cut(p, "?")

	q, err := ParseQuery(search)
	if err != nil {
		return err
	}

	u.c.Path, u.c.Search = "", ""
	u.c.Pathname, u.c.Query = pathname, q

	return nil
}

// SetSearch decodes search, with or without '?', into Query.
func (u *URL) SetSearch(search string) error {
	q, err := ParseQuery(search)
	if err != nil {
		return err
	}

	u.flattenPath()
	u.c.Search = ""
	u.c.Query = q

	return nil
}

// SetQuery replaces the query. Nil query falls back to no search at all.
func (u *URL) SetQuery(q Query) {
	u.flattenPath()
	u.c.Search = ""
	u.c.Query = q.Clone()
}

// SetHash sets the fragment. The leading '#' is added if missing.
func (u *URL) SetHash(h string) {
	if h != "" && !strings.HasPrefix(h, "#") {
		h = "#" + h
	}

	u.c.Fragment = h
}

func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	return u.SetHref(string(text))
}

func (u *URL) dropOrphan() {
	if u.c.User == "" {
		u.c.Password = ""
	}
}

// flatten* turn an override into canonical fields before one of them
// is changed. Undecodable override text is taken literally.

func (u *URL) flattenAuth() {
	if u.c.Auth == "" {
		return
	}

	user, pass, _ := strings.Cut(u.c.Auth, ":")

	u.c.Auth = ""
	u.c.User, u.c.Password = unescapeOr(user), unescapeOr(pass)
}

func (u *URL) flattenHost() {
	if u.c.Host == "" {
		return
	}

	u.SetHost(u.c.Host)
}

func (u *URL) flattenPath() {
	if u.c.Path == "" {
		return
	}

	pathname, search, _ := strings.Cut(u.c.Path, "?")

	u.c.Path = ""
	u.c.Pathname = pathname

	q, err := ParseQuery(search)
	if err != nil {
		u.c.Search = "?" + search
		u.c.Query = nil

		return
	}

	u.c.Search = ""
	u.c.Query = csel(len(q) != 0, q, nil)
}

func splitHost(h string) (hostname string, port int) {
	i := strings.LastIndexByte(h, ':')
	if i < 0 || !decimals.wide().all(h[i+1:]) || i+1 == len(h) {
		return h, 0
	}

	return h[:i], parsePort(h[i+1:])
}

func unescapeOr(s string) string {
	r, err := Unescape(s)
	if err != nil {
		return s
	}

	return r
}
