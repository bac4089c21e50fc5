package binary

import "encoding/binary"

// Sum16 computes the 16-bit additive checksum Igor uses over binary wave
// headers: the sum of all 16-bit words in data, truncated to 16 bits.
// A trailing odd byte is ignored, matching Igor's word-wise loop.
//
// Igor writes the header's checksum field such that the sum over the
// checksummed prefix comes out to zero.
func Sum16(data []byte, order binary.ByteOrder) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += order.Uint16(data[i : i+2])
	}
	return sum
}

// VerifySum16 reports whether the checksummed prefix sums to zero.
func VerifySum16(data []byte, order binary.ByteOrder) bool {
	return Sum16(data, order) == 0
}

// ChecksumFix returns the 16-bit value that, written over the (currently
// zeroed) checksum word, makes Sum16 over data come out to zero. Used by
// test fixture encoders.
func ChecksumFix(data []byte, order binary.ByteOrder) uint16 {
	return -Sum16(data, order)
}
