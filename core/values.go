package core

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Percentage is a parsed alcohol percentage.
type Percentage float64

// ParsePercentage parses a user-entered percentage such as "5.2", "5,2" or " 4 ".
// Any finite number is accepted, including negative ones.
func ParsePercentage(s string) (Percentage, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Percentage(v), nil
}

// Year is a parsed production year.
type Year int

// ParseYear parses a user-entered production year.
func ParseYear(s string) (Year, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Year(v), nil
}

// Digest is a 64-bit content digest of a photo.
type Digest uint64

// DigestOf returns the BLAKE2b digest of data.
// Identical content always produces the same digest.
func DigestOf(data []byte) Digest {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return Digest(binary.LittleEndian.Uint64(sum))
}
