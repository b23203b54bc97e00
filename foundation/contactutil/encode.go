package contactutil

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s for use inside a single URL component.
// Only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left as is; every other byte of
// the UTF-8 form becomes %XX. Space is %20 and newline is %0A.
// Invalid UTF-8 is encoded byte by byte instead of being rejected.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if unreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[ch>>4])
		b.WriteByte(upperHex[ch&0x0F])
	}
	return b.String()
}

func unreserved(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
