package easyurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikand.dev/go/easyurl"
)

func tokenize(tb testing.TB, s string) easyurl.Components {
	tb.Helper()

	c, err := easyurl.Tokenize(s)
	require.NoError(tb, err, "tokenize %q", s)

	return c
}

func TestIsRelative(tb *testing.T) {
	type TC struct {
		In   string
		Want bool
	}

	fail := -1
	tcs := []TC{
		{In: "relative/path", Want: true},
		{In: "/abs/path", Want: true},
		{In: "domain.tld/x", Want: true},
		{In: "?q=1", Want: true},
		{In: "#frag", Want: true},
		{In: "http://h/", Want: false},
		{In: "user@h/p", Want: false},
		{In: ":pass@h/p", Want: false},
		{In: "h:80/p", Want: false},
	}

	for j, tc := range tcs {
		if !assert.Equal(tb, tc.Want, easyurl.IsRelative(tokenize(tb, tc.In))) {
			fail = j
			break
		}
	}

	if tb.Failed() {
		tb.Logf("failed at #%d, %#v", fail, tcs[fail])
	}
}

func TestResolve(tb *testing.T) {
	type TC struct {
		Ref, Base string
		Pathname  string
		Out       string
	}

	fail := -1
	tcs := []TC{
		{Ref: "relative/path", Base: "http://domain.tld/path/", Pathname: "/path/relative/path", Out: "http://domain.tld/path/relative/path"},
		{Ref: "file.html", Base: "http://h/dir/page.html", Pathname: "/dir/file.html", Out: "http://h/dir/file.html"},
		{Ref: "x/y", Base: "http://h", Pathname: "/x/y", Out: "http://h/x/y"},
		{Ref: "/abs", Base: "http://h/a/b", Pathname: "/a/abs", Out: "http://h/a/abs"},
		{Ref: "?q=1", Base: "http://h/a/b", Pathname: "/a/", Out: "http://h/a/?q=1"},
		{Ref: "#frag", Base: "http://h/a/b", Pathname: "/a/", Out: "http://h/a/#frag"},
		{Ref: "../x", Base: "http://h/a/b", Pathname: "/a/../x", Out: "http://h/a/../x"},
		{Ref: "./x", Base: "http://h/a/", Pathname: "/a/./x", Out: "http://h/a/./x"},
		{Ref: "p", Base: "http://u:pw@h:81/d/", Pathname: "/d/p", Out: "http://u:pw@h:81/d/p"},
		{Ref: "p?x=1#f", Base: "http://h/d/?y=2#g", Pathname: "/d/p", Out: "http://h/d/p?x=1#f"},
		{Ref: "domain.tld/x", Base: "https://h/d/", Pathname: "/d/domain.tld/x", Out: "https://h/d/domain.tld/x"},
	}

	for j, tc := range tcs {
		ref := tokenize(tb, tc.Ref)
		base := tokenize(tb, tc.Base)

		require.True(tb, easyurl.IsRelative(ref))

		r := easyurl.Resolve(ref, base)
		assert.Equal(tb, tc.Pathname, r.Pathname)
		assert.Equal(tb, tc.Out, easyurl.Format(r))

		if tb.Failed() {
			fail = j
			break
		}
	}

	if tb.Failed() {
		tb.Logf("failed at #%d, %#v", fail, tcs[fail])
	}
}

func TestResolveInherit(t *testing.T) {
	ref := tokenize(t, "p?x=1#f")
	base := tokenize(t, "HTTP://u:pw@h:81/d/?y=2#g")

	r := easyurl.Resolve(ref, base)

	assert.Equal(t, easyurl.Components{
		Scheme:   "http:",
		Slashed:  true,
		User:     "u",
		Password: "pw",
		Hostname: "h",
		Port:     81,
		Pathname: "/d/p",
		Query:    easyurl.Query{val("x", "1")},
		Fragment: "#f",
	}, r)
}

func TestResolvePure(t *testing.T) {
	ref := tokenize(t, "a/b?x=1")
	base := tokenize(t, "http://h/d/e")

	refCopy := tokenize(t, "a/b?x=1")
	baseCopy := tokenize(t, "http://h/d/e")

	r := easyurl.Resolve(ref, base)
	r.Query.Set("x", "2")
	r.Query.Set("y", "3")

	assert.Equal(t, refCopy, ref)
	assert.Equal(t, baseCopy, base)
}

func TestResolveNoHostBase(t *testing.T) {
	ref := tokenize(t, "x")
	base := easyurl.Components{Pathname: "/a/b"}

	r := easyurl.Resolve(ref, base)

	assert.Equal(t, "/a/x", r.Pathname)
	assert.Equal(t, "", r.Hostname)
	assert.Equal(t, "/a/x", easyurl.Format(r))
}
