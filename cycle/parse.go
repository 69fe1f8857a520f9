package cycle

import (
	"strconv"
	"strings"

	"github.com/sifting/permcore/apperr"
)

// Parse decodes 1-based disjoint-cycle notation into a 0-based image
// array. "()" and "" both denote the identity and yield a nil image
// (the caller's register step pads with fixed points as needed).
// Within a cycle, whitespace and commas are equivalent separators.
// Non-positive or non-integer tokens are a fatal apperr.ErrInvalidInput.
func Parse(s string) ([]int32, error) {
	groups, err := splitGroups(s)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}

	var maxPoint int32
	cycles := make([][]int32, 0, len(groups))
	for _, g := range groups {
		pts, err := parseGroup(g)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			if p > maxPoint {
				maxPoint = p
			}
		}
		cycles = append(cycles, pts)
	}
	if maxPoint == 0 {
		return nil, nil
	}

	// acc[x] is the current accumulated image of x (0-based); start at
	// identity, then fold in cycles left-to-right so the first cycle
	// listed is the first one applied.
	acc := make([]int32, maxPoint)
	for i := range acc {
		acc[i] = int32(i)
	}
	for _, pts := range cycles {
		acc = foldCycle(acc, pts)
	}
	return acc, nil
}

// foldCycle composes a single disjoint cycle (1-based points) on top of
// acc: result(x) = cycle(acc(x)).
func foldCycle(acc []int32, pts []int32) []int32 {
	if len(pts) == 0 {
		return acc
	}
	// cycleOf maps a 0-based point touched by this cycle to its image;
	// points outside the cycle map to themselves.
	cycleOf := make(map[int32]int32, len(pts))
	for i, p := range pts {
		from := p - 1
		to := pts[(i+1)%len(pts)] - 1
		cycleOf[from] = to
	}
	out := make([]int32, len(acc))
	for x, y := range acc {
		if img, ok := cycleOf[y]; ok {
			out[x] = img
		} else {
			out[x] = y
		}
	}
	return out
}

// splitGroups extracts the substrings between matching parentheses.
// A bare "()" contributes an empty group. Anything outside of matching
// parens must be whitespace, otherwise the input is malformed.
func splitGroups(s string) ([]string, error) {
	var groups []string
	depth := 0
	var cur strings.Builder
	for _, r := range s {
		switch r {
		case '(':
			if depth != 0 {
				return nil, apperr.Wrap("cycle", "nested parenthesis", apperr.ErrInvalidInput)
			}
			depth++
			cur.Reset()
		case ')':
			if depth != 1 {
				return nil, apperr.Wrap("cycle", "unbalanced parenthesis", apperr.ErrInvalidInput)
			}
			depth--
			groups = append(groups, cur.String())
		default:
			if depth == 0 && !strings.ContainsRune(" \t\r\n", r) {
				return nil, apperr.Wrap("cycle", "unexpected token outside cycle", apperr.ErrInvalidInput)
			}
			cur.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, apperr.Wrap("cycle", "unbalanced parenthesis", apperr.ErrInvalidInput)
	}
	return groups, nil
}

// parseGroup splits a single cycle's inner text on whitespace/commas
// and parses each token as a positive integer.
func parseGroup(g string) ([]int32, error) {
	fields := strings.FieldsFunc(g, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	pts := make([]int32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, apperr.Wrap("cycle", "point must be a positive integer, got "+strconv.Quote(f), apperr.ErrInvalidInput)
		}
		pts = append(pts, int32(n))
	}
	return pts, nil
}
