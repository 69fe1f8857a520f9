package cycle

import "strconv"

// Format decomposes a 0-based image array into disjoint 1-based cycles
// (fixed points omitted) and concatenates them with no separator. The
// identity permutation (including a nil or all-fixed image) formats as
// "()".
func Format(image []int32) string {
	seen := make([]bool, len(image))
	var b []byte
	wrote := false
	for start := range image {
		if seen[start] || image[start] == int32(start) {
			seen[start] = true
			continue
		}
		b = append(b, '(')
		x := start
		for !seen[x] {
			seen[x] = true
			b = strconv.AppendInt(b, int64(x+1), 10)
			x = int(image[x])
			if x != start {
				b = append(b, ' ')
			}
		}
		b = append(b, ')')
		wrote = true
	}
	if !wrote {
		return "()"
	}
	return string(b)
}
