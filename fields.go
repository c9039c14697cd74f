package easyurl

// Fields is a flat export of URL components, keyed the way the
// components are named in the browser location object.
//
// The first eight are the raw fields. The rest are derived ones
// and are left zero in a simple export.
type Fields struct {
	Protocol        string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	SlashedProtocol bool   `json:"slashedProtocol,omitempty" yaml:"slashedProtocol,omitempty"`
	Auth            string `json:"auth,omitempty" yaml:"auth,omitempty"`
	Hostname        string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Port            int    `json:"port,omitempty" yaml:"port,omitempty"`
	Pathname        string `json:"pathname,omitempty" yaml:"pathname,omitempty"`
	Search          string `json:"search,omitempty" yaml:"search,omitempty"`
	Hash            string `json:"hash,omitempty" yaml:"hash,omitempty"`

	User  string `json:"user,omitempty" yaml:"user,omitempty"`
	Pass  string `json:"pass,omitempty" yaml:"pass,omitempty"`
	Host  string `json:"host,omitempty" yaml:"host,omitempty"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Query Query  `json:"query,omitempty" yaml:"query,omitempty"`
}

// ToFields exports u. Simple export has only the raw fields.
func (u *URL) ToFields(simple bool) Fields {
	f := Fields{
		Protocol:        u.c.Scheme,
		SlashedProtocol: u.c.Slashed,
		Auth:            u.Auth(),
		Hostname:        u.c.Hostname,
		Port:            u.c.Port,
		Pathname:        u.c.Pathname,
		Search:          u.Search(),
		Hash:            u.c.Fragment,
	}

	if simple {
		return f
	}

	f.User = u.c.User
	f.Pass = u.c.Password
	f.Host = u.Host()
	f.Path = u.Path()
	f.Query = u.Query()

	return f
}
