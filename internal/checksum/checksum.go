// Package checksum implements the content hash used to compare files across
// snapshots: CRC-64/Redis, computed incrementally over arbitrary byte chunks.
package checksum

import "sync"

// Sum is a 64-bit content checksum.
type Sum uint64

// polynomial and parameters for the CRC-64/Redis variant: poly 0xad93d23594c935a9,
// init 0, reflected input/output, xorout 0. The right-shifting table below
// works on reflected input, so it takes the bit-reversed form of that
// polynomial, 0x95ac9329ac4bc9b5.
//
// The standard library's hash/crc64 package hard-codes init=xorout=all-ones
// (it XORs the running register with ^0 at both start and finish), which
// matches the ISO and ECMA-182 variants it ships but not Redis's all-zero
// init/xorout. No third-party module in the reference pack implements a
// parameterized CRC-64 with a Redis preset (the closest candidate,
// cespare/xxhash, is a different algorithm and would silently change the
// checksum domain), so the reflected table-driven algorithm is implemented
// directly here. See DESIGN.md.
const polynomial = 0x95ac9329ac4bc9b5

var (
	tableOnce sync.Once
	table     [256]uint64
)

func buildTable() {
	for i := 0; i < 256; i++ {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ polynomial
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
}

func getTable() *[256]uint64 {
	tableOnce.Do(buildTable)
	return &table
}

// Summer accumulates a CRC-64/Redis checksum over a byte stream fed in
// chunks via Consume. It is restartable: after Finalize, the instance can
// be reused for a new input.
type Summer struct {
	crc uint64
}

// New returns a Summer ready to consume bytes.
func New() *Summer {
	return &Summer{}
}

// Consume folds bs into the running checksum and returns the receiver so
// calls can be chained.
func (s *Summer) Consume(bs []byte) *Summer {
	tab := getTable()
	crc := s.crc
	for _, b := range bs {
		crc = tab[byte(crc)^b] ^ (crc >> 8)
	}
	s.crc = crc
	return s
}

// Finalize returns the checksum of everything consumed so far and resets
// the Summer so it can be reused. Finalize without any Consume call
// returns the checksum of the empty input.
func (s *Summer) Finalize() Sum {
	result := s.crc
	s.crc = 0
	return Sum(result)
}
