package sessionstore

import (
	"crypto/rand"
	"fmt"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 16
	// largest multiple of len(idAlphabet) below 256, for unbiased sampling
	idMaxByte = 256 - (256 % len(idAlphabet))
)

// NewID returns a random 16 character alphanumeric token (~95 bits).
func NewID() (string, error) {
	out := make([]byte, 0, idLength)
	buf := make([]byte, idLength*2)

	for len(out) < idLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			if int(b) >= idMaxByte {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == idLength {
				break
			}
		}
	}

	return string(out), nil
}
