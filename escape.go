package easyurl

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type (
	// Esc is a percent-decoding status.
	// Non-zero values are errors.
	Esc int
)

const (
	ErrEscape Esc = 1 << iota
	ErrBuffer
	ErrRune

	EscErr = ErrEscape | ErrBuffer | ErrRune
)

const hexu = "0123456789ABCDEF"

// Escape percent-encodes every byte of s outside of the unreserved set
// "A-Z a-z 0-9 - _ . ! ~ * ' ( )". Hex digits are upper case.
func Escape(s string) string {
	i := unreserved.skip(s, 0)
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*(len(s)-i))

	for st := 0; ; {
		b.WriteString(s[st:i])
		if i == len(s) {
			break
		}

		b.WriteByte('%')
		b.WriteByte(hexu[s[i]>>4])
		b.WriteByte(hexu[s[i]&0xf])

		st = i + 1
		i = unreserved.skip(s, st)
	}

	return b.String()
}

// Unescape decodes %XX octets. '+' is not treated as a space.
// Each run of decoded octets must be valid UTF-8.
func Unescape(s string) (string, error) {
	r, st, i := unescape(s)
	if st.Err() {
		return "", errors.Wrapf(st, "unescape %q at %d", s, i)
	}

	return r, nil
}

func unescape(s string) (_ string, st Esc, i int) {
	i = strings.IndexByte(s, '%')
	if i < 0 {
		return s, 0, 0
	}

	buf := make([]byte, 0, len(s))
	buf = append(buf, s[:i]...)

	for i < len(s) {
		if s[i] != '%' {
			j := strings.IndexByte(s[i:], '%')
			if j < 0 {
				buf = append(buf, s[i:]...)
				break
			}

			buf = append(buf, s[i:i+j]...)
			i += j
		}

		run := len(buf)

		for i < len(s) && s[i] == '%' {
			var c byte

			st, c = decodeEscape(s, i+1)
			if st.Err() {
				return "", st, i
			}

			buf = append(buf, c)
			i += 3
		}

		if !utf8.Valid(buf[run:]) {
			return "", ErrRune, i
		}
	}

	return string(buf), 0, i
}

func decodeEscape(s string, i int) (st Esc, c byte) {
	if i+2 > len(s) {
		return ErrBuffer, 0
	}

	for j := i; j < i+2; j++ {
		if !hexes.is(s[j]) {
			return ErrEscape, 0
		}

		x := s[j] | 0x20 // make lower
		c <<= 4

		if x <= '9' {
			c += x - '0'
		} else {
			c += 10 + x - 'a'
		}
	}

	return 0, c
}

func (s Esc) Err() bool {
	return s&EscErr != 0
}

func (s Esc) Any(f Esc) bool {
	return s&f != 0
}

func (s Esc) Error() string {
	if !s.Err() {
		return "ok"
	}

	r := ""
	comma := false

	add := func(e Esc, t string) {
		if !s.Any(e) {
			return
		}

		r += csel(comma, ", ", "")
		r += t
		comma = true
	}

	add(ErrEscape, "bad escape")
	add(ErrBuffer, "short escape")
	add(ErrRune, "bad rune")

	return r
}

func csel[T any](c bool, x, y T) T {
	if c {
		return x
	}

	return y
}
