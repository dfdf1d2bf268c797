package compare

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// CompareI orders T ascending ignoring case.
type CompareI[T ~string | ~[]byte] struct{}

func (CompareI[T]) Compare(a, b T) int { return compareFold(string(a), string(b)) }

// CompareIR orders T descending ignoring case.
type CompareIR[T ~string | ~[]byte] struct{}

func (CompareIR[T]) Compare(a, b T) int { return compareFold(string(b), string(a)) }

// compareFold compares a and b after Unicode case folding.
func compareFold(a, b string) int {
	if isASCII(a) && isASCII(b) {
		return compareFoldASCII(a, b)
	}
	f := cases.Fold()
	fa, fb := f.String(a), f.String(b)
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

func compareFoldASCII(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
