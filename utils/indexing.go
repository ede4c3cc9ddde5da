package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Contains(val int) bool {
	// I must be sorted ascending
	lo, hi := 0, len(I)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case I[mid] == val:
			return true
		case I[mid] < val:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}

// Complement returns the ascending complement of sorted I within [0, N)
func (I Index) Complement(N int) (r Index) {
	r = make(Index, 0, N-len(I))
	var ii int
	for d := 0; d < N; d++ {
		if ii < len(I) && I[ii] == d {
			ii++
			continue
		}
		r = append(r, d)
	}
	return
}
