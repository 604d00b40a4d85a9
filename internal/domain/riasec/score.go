package riasec

import (
	"sort"
	"strings"
)

// CodeDelimiter joins the three dominant dimension symbols of a
// profile code, e.g. "R-I-C".
const CodeDelimiter = "-"

// ScoreVector maps each of the six dimensions to a non-negative count.
type ScoreVector map[Dimension]int

func NewScoreVector() ScoreVector {
	v := make(ScoreVector, len(CanonicalOrder))
	for _, d := range CanonicalOrder {
		v[d] = 0
	}
	return v
}

// Clone returns an independent copy.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for d, n := range v {
		out[d] = n
	}
	return out
}

// Score converts a set of selected item IDs into a score vector.
// Every selected item adds +1 to each dimension it is tagged with.
// Duplicate IDs count once, unknown IDs are ignored, and an empty
// selection yields an all-zero vector. The bank is never mutated.
func Score(bank Bank, selected []string) ScoreVector {
	idx := bank.ItemIndex()
	v := NewScoreVector()

	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true

		impacts, ok := idx[id]
		if !ok {
			continue
		}
		for _, d := range impacts {
			if !d.Valid() {
				continue
			}
			v[d]++
		}
	}
	return v
}

// Rank returns all six dimensions ordered by descending score. Pairs
// are built in canonical order and sorted stably, so equal scores keep
// the fixed R, I, A, S, E, C tie-break regardless of map iteration.
func Rank(v ScoreVector) []Dimension {
	out := make([]Dimension, len(CanonicalOrder))
	copy(out, CanonicalOrder[:])
	sort.SliceStable(out, func(i, j int) bool {
		return v[out[i]] > v[out[j]]
	})
	return out
}

// TopThree returns the three dominant dimensions, ranked.
func TopThree(v ScoreVector) [3]Dimension {
	ranked := Rank(v)
	return [3]Dimension{ranked[0], ranked[1], ranked[2]}
}

// DeriveProfileCode derives the ranked three-letter profile code for a
// vector. It is a pure function of the vector.
func DeriveProfileCode(v ScoreVector) string {
	top := TopThree(v)
	parts := []string{string(top[0]), string(top[1]), string(top[2])}
	return strings.Join(parts, CodeDelimiter)
}

// CodeLetters extracts the dimension letters of a profile code in the
// code's own order, tolerating delimiters and case.
func CodeLetters(code string) []Dimension {
	cleaned := strings.ToUpper(strings.ReplaceAll(code, CodeDelimiter, ""))
	out := make([]Dimension, 0, len(cleaned))
	for _, r := range cleaned {
		d := Dimension(r)
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out
}
