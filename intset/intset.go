package intset

import "sort"

// Contains reports whether x is present in the ascending unique
// sequence s. Complexity: O(log n).
func Contains(s []int32, x int32) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= x })
	return i < len(s) && s[i] == x
}

// Union returns the ascending unique merge of a and b. Complexity:
// O(len(a)+len(b)).
func Union(a, b []int32) []int32 {
	if len(a) == 0 {
		return append([]int32(nil), b...)
	}
	if len(b) == 0 {
		return append([]int32(nil), a...)
	}
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Intersect returns the ascending sequence of elements present in both
// a and b, or nil when they share no element. Complexity:
// O(len(a)+len(b)).
func Intersect(a, b []int32) []int32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	cap0 := len(a)
	if len(b) < cap0 {
		cap0 = len(b)
	}
	out := make([]int32, 0, cap0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Difference returns the ascending sequence of elements in a but not in
// b. Complexity: O(len(a)+len(b)).
func Difference(a, b []int32) []int32 {
	if len(a) == 0 {
		return nil
	}
	if len(b) == 0 {
		return append([]int32(nil), a...)
	}
	out := make([]int32, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			i++
			j++
		}
	}
	return out
}

// SortUnique sorts s ascending in place and compacts it to its unique
// prefix, returning that prefix. The caller must permit mutation of s.
func SortUnique(s []int32) []int32 {
	if len(s) < 2 {
		return s
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w]
}
