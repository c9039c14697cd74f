package easyurl

import (
	"github.com/pkg/errors"
)

// ErrMalformedURL means that a string could not be decomposed into URL
// components.
var ErrMalformedURL = errors.New("malformed url")

func malformed(url string) error {
	return errors.Wrapf(ErrMalformedURL, "parse %q", url)
}

func badQuery(err error, search string) error {
	return errors.Wrapf(err, "query %q", search)
}

func badAuth(err error, auth string) error {
	return errors.Wrapf(err, "auth %q", auth)
}
