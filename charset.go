package easyurl

type (
	charset uint64
	wideset [2]charset
)

var (
	decimals = newCharset("0123456789")
	lowHexes = decimals.wide().merge("abcdef")
	hexes    = lowHexes.merge("ABCDEF")

	lower   = wideset{}.mergeRange('a', 'z')
	upper   = wideset{}.mergeRange('A', 'Z')
	letters = lower.or(upper)

	// unreserved is the set left as is by component escaping.
	unreserved = letters.or(decimals.wide()).merge("-_.!~*'()")
)

func newCharset(s string) (x charset) {
	for _, c := range []byte(s) {
		x = x.set(c)
	}

	return x
}

// skip returns the index of the first byte of s starting from i not in x.
func (x wideset) skip(s string, i int) int {
	for i < len(s) && x.is(s[i]) {
		i++
	}

	return i
}

func (x wideset) all(s string) bool {
	return x.skip(s, 0) == len(s)
}

func (x wideset) is(b byte) bool {
	if b < 64 {
		return x[0].is(b)
	}
	if b < 128 {
		return x[1].is(b - 64)
	}

	return false
}

func (x wideset) merge(s string) wideset {
	for _, c := range []byte(s) {
		x = x.set(c)
	}

	return x
}

func (x wideset) mergeRange(a, b byte) wideset {
	for c := a; c <= b; c++ {
		x = x.set(c)
	}

	return x
}

func (x wideset) set(b byte) wideset {
	if b < 64 {
		x[0] = x[0].set(b)
	} else {
		x[1] = x[1].set(b - 64)
	}

	return x
}

func (x wideset) or(y wideset) wideset {
	x[0] |= y[0]
	x[1] |= y[1]

	return x
}

func (x charset) is(b byte) bool {
	return b < 64 && x&(1<<b) == (1<<b)
}

func (x charset) set(b byte) charset {
	if b >= 64 {
		panic(b)
	}

	return x | 1<<b
}

func (x charset) wide() wideset { return wideset{x, 0} }
