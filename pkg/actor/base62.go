package actor

import "errors"

const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var errBase62 = errors.New("actor.invalid_base62")

var base62Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(base62Alphabet); i++ {
		idx[base62Alphabet[i]] = int8(i)
	}
	return idx
}()

// encodeBase62 renders a non-negative integer in base 62, digits first,
// then lowercase, then uppercase.
func encodeBase62(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [11]byte // 62^11 > max int64
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}

func decodeBase62(s string) (int64, error) {
	if s == "" {
		return 0, errBase62
	}
	var n int64
	for i := 0; i < len(s); i++ {
		d := base62Index[s[i]]
		if d < 0 {
			return 0, errBase62
		}
		n = n*62 + int64(d)
		if n < 0 {
			return 0, errBase62
		}
	}
	return n, nil
}
