package easyurl

import "strings"

// Auth is the decoded user info of a URL.
// Password is meaningful only with a non-empty User.
type Auth struct {
	User     string
	Password string
}

// ParseAuth splits auth on the first ':' and decodes both sides.
// It keeps whatever it finds, an orphaned password included.
func ParseAuth(auth string) (a Auth, err error) {
	user, pass, _ := strings.Cut(auth, ":")

	a.User, err = Unescape(user)
	if err != nil {
		return Auth{}, badAuth(err, auth)
	}

	a.Password, err = Unescape(pass)
	if err != nil {
		return Auth{}, badAuth(err, auth)
	}

	return a, nil
}

// FormatAuth encodes a as "user[:password]".
// ok is false if there is no user, and then nothing is to be written before '@'.
func FormatAuth(a Auth) (s string, ok bool) {
	if a.User == "" {
		return "", false
	}

	s = Escape(a.User)

	if a.Password != "" {
		s += ":" + Escape(a.Password)
	}

	return s, true
}
