package transform

// visitedMask is a fixed size bitset with one bit per pixel.
type visitedMask []uint64

func newVisitedMask(n int) visitedMask {
	return make(visitedMask, (n+63)>>6)
}

func (m visitedMask) get(i int) bool {
	return m[i>>6]&(1<<(uint(i)&63)) != 0
}

func (m visitedMask) set(i int) {
	m[i>>6] |= 1 << (uint(i) & 63)
}
