// Package descriptor contains the fixed-width binary descriptor used by LATCH features and
// the Hamming distance between two of them.
package descriptor

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	// BitSize is the number of bits in a descriptor.
	BitSize = 512
	// BitsPerWord is the number of bits stored in each word of a descriptor.
	BitsPerWord = 64
	// Words is the number of 64-bit words in a descriptor.
	Words = BitSize / BitsPerWord
)

// Descriptor is a 512-bit binary code. Bit k of word j is bit 64*j+k of the descriptor.
type Descriptor [Words]uint64

// Descriptors is an ordered list of descriptors, usually one per keypoint.
type Descriptors []Descriptor

// constants for the parallel bit count.
const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

// PopCount64 returns the number of set bits in x.
func PopCount64(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

// Distance returns the Hamming distance between a and b.
func Distance(a, b Descriptor) int {
	dist := 0
	for i := 0; i < Words; i++ {
		dist += PopCount64(a[i] ^ b[i])
	}
	return dist
}

// Distance returns the Hamming distance between d and other.
func (d Descriptor) Distance(other Descriptor) int {
	return Distance(d, other)
}

// OnesCount returns the number of set bits in d.
func (d Descriptor) OnesCount() int {
	n := 0
	for _, w := range d {
		n += PopCount64(w)
	}
	return n
}

// Bit reports whether bit i of d is set.
func (d Descriptor) Bit(i int) bool {
	return d[i/BitsPerWord]>>(uint(i)%BitsPerWord)&1 == 1
}

// SetBit sets bit i of d to 1.
func (d *Descriptor) SetBit(i int) {
	d[i/BitsPerWord] |= 1 << (uint(i) % BitsPerWord)
}

// String returns the descriptor as hex, word 0 first, each word big endian.
func (d Descriptor) String() string {
	var buf [Words * 8]byte
	for i, w := range d {
		binary.BigEndian.PutUint64(buf[i*8:], w)
	}
	return hex.EncodeToString(buf[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Descriptor) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Descriptor) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseHex parses a descriptor written by String.
func ParseHex(s string) (Descriptor, error) {
	var d Descriptor
	s = strings.TrimSpace(s)
	if len(s) != Words*16 {
		return d, errors.Errorf("descriptor hex must have %d characters, got %d", Words*16, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, errors.Wrap(err, "invalid descriptor hex")
	}
	for i := range d {
		d[i] = binary.BigEndian.Uint64(raw[i*8:])
	}
	return d, nil
}
