package cards

// Triplet is an unordered group of three cards, stored in a fixed-size array.
type Triplet [3]Card

// MatchThree reports whether three attribute values are all equal or all
// pairwise distinct. Exactly two equal values break the match.
func MatchThree(x, y, z Value) bool {
	if x == y {
		return y == z
	}
	return x != z && y != z
}

// IsMatch reports whether a, b and c form a set: for every attribute the
// three values are all equal or all distinct. Stops at the first failing
// attribute. The result does not depend on argument order.
func IsMatch(a, b, c Card) bool {
	for _, attr := range Attributes {
		if !MatchThree(attr(a), attr(b), attr(c)) {
			return false
		}
	}
	return true
}

// IsMatch reports whether the triplet forms a set.
func (t Triplet) IsMatch() bool { return IsMatch(t[0], t[1], t[2]) }

// Distinct reports whether the three cards are pairwise different.
func (t Triplet) Distinct() bool {
	return t[0] != t[1] && t[0] != t[2] && t[1] != t[2]
}

// Contains reports whether c is one of the triplet's cards.
func (t Triplet) Contains(c Card) bool {
	return t[0] == c || t[1] == c || t[2] == c
}

// Complete returns the unique card that forms a set with a and b.
// Per attribute: the same value when a and b agree, the remaining value otherwise.
func Complete(a, b Card) Card {
	third := func(x, y Value) Value {
		if x == y {
			return x
		}
		// 1+2+3 = 6
		return 6 - x - y
	}
	return Card{
		Shape: third(a.Shape, b.Shape),
		Style: third(a.Style, b.Style),
		Color: third(a.Color, b.Color),
		Count: third(a.Count, b.Count),
	}
}

// Combinations calls emit for every 3-element index combination i<j<k of 0..n-1,
// in lexicographic order. Emits nothing when n < 3.
func Combinations(n int, emit func(idx [3]int)) {
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				emit([3]int{i, j, k})
			}
		}
	}
}

// AllMatches enumerates every 3-card subset of open that forms a set.
// Results follow Combinations order over slot indices.
func AllMatches(open []Card) []Triplet {
	var out []Triplet
	Combinations(len(open), func(idx [3]int) {
		a, b, c := open[idx[0]], open[idx[1]], open[idx[2]]
		if IsMatch(a, b, c) {
			out = append(out, Triplet{a, b, c})
		}
	})
	return out
}
