package random

const (
	golden    = 0x9e3779b97f4a7c15
	streamMix = 0xda942042e4dd58b5
)

// Stream derives the two PCG state words for the given stream index of
// seed. Distinct indices give statistically independent generators, and the
// mapping is a pure function so results do not depend on scheduling.
func Stream(seed int64, index uint64) (hi, lo uint64) {
	x := uint64(seed) ^ golden
	x = splitmix64(x + index*golden)
	hi = splitmix64(x)
	lo = splitmix64(x ^ streamMix)
	return hi, lo
}

// splitmix64 scrambles x into a well-mixed 64-bit value.
func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
