package game

import "math"

// HandType names a hand's scoring category.
type HandType string

const (
	PureSabacc HandType = "Pure Sabacc"
	FullSabacc HandType = "Full Sabacc"
	YeeHaa     HandType = "Yee-Haa"
	RuleOfTwo  HandType = "Rule of Two"
	SabaccPair HandType = "Sabacc Pair"
	Sabacc     HandType = "Sabacc"
	Nulrhek    HandType = "Nulrhek"
)

const (
	rankPureSabacc = 1
	rankFullSabacc = 2
	rankYeeHaa     = 3
	rankRuleOfTwo  = 4
	rankSabaccPair = 5
	rankSabacc     = 6
	rankNulrhek    = 10
)

// noPositive stands in for "best positive card" when a hand has none. Every
// negated real card value beats it.
const noPositive = math.MinInt32

// Evaluation is the showdown key for one hand. Keys compare ascending:
// a lower Rank is strictly better, and within equal ranks the
// lexicographically smaller TieBreakers sequence wins. Equal keys are a
// true tie.
type Evaluation struct {
	Rank        int      `json:"rank"`
	TieBreakers []int    `json:"tie_breakers"`
	Type        HandType `json:"type"`
	Total       int      `json:"total"`
}

// Evaluate ranks a hand. It is a pure function of the hand's multiset
// contents; card order never affects the result.
func Evaluate(cards []Card) Evaluation {
	total := 0
	counts := make(map[Card]int)
	absCounts := make(map[int]int)
	zeros := 0
	positiveSum := 0
	maxPositive := 0
	minAbs := math.MaxInt32
	minAbsNonzero := math.MaxInt32

	for _, c := range cards {
		v := int(c)
		total += v
		counts[c]++
		a := v
		if a < 0 {
			a = -a
		}
		absCounts[a]++
		if a < minAbs {
			minAbs = a
		}
		if v != 0 && a < minAbsNonzero {
			minAbsNonzero = a
		}
		if v == 0 {
			zeros++
		}
		if v > 0 {
			positiveSum += v
			if v > maxPositive {
				maxPositive = v
			}
		}
	}

	if total != 0 {
		sign := 0
		if total < 0 {
			sign = 1
		}
		absTotal := total
		if absTotal < 0 {
			absTotal = -absTotal
		}
		return Evaluation{
			Rank:        rankNulrhek,
			TieBreakers: []int{absTotal, sign, -len(cards), -positiveSum, negOrNoPositive(maxPositive)},
			Type:        Nulrhek,
			Total:       total,
		}
	}

	switch {
	case len(cards) == 2 && zeros == 2:
		return Evaluation{Rank: rankPureSabacc, TieBreakers: []int{}, Type: PureSabacc}

	case len(cards) == 5 && counts[10] == 2 && counts[-10] == 2 && zeros == 1:
		return Evaluation{Rank: rankFullSabacc, TieBreakers: []int{}, Type: FullSabacc}

	case zeros == 1 && hasNonzeroPair(absCounts):
		return Evaluation{Rank: rankYeeHaa, TieBreakers: []int{minAbsNonzero}, Type: YeeHaa}

	case pairedValues(absCounts) >= 2:
		return Evaluation{Rank: rankRuleOfTwo, TieBreakers: []int{minAbs}, Type: RuleOfTwo}

	case hasSignedPair(counts):
		return Evaluation{Rank: rankSabaccPair, TieBreakers: []int{minAbs}, Type: SabaccPair}

	default:
		return Evaluation{
			Rank:        rankSabacc,
			TieBreakers: []int{minAbs, -len(cards), -positiveSum, negOrNoPositive(maxPositive)},
			Type:        Sabacc,
		}
	}
}

func negOrNoPositive(maxPositive int) int {
	if maxPositive == 0 {
		return noPositive
	}
	return -maxPositive
}

func hasNonzeroPair(absCounts map[int]int) bool {
	for v, n := range absCounts {
		if v != 0 && n >= 2 {
			return true
		}
	}
	return false
}

// pairedValues counts distinct absolute values appearing at least twice.
// A pair of zeroes counts, matching the table rules.
func pairedValues(absCounts map[int]int) int {
	pairs := 0
	for _, n := range absCounts {
		if n >= 2 {
			pairs++
		}
	}
	return pairs
}

func hasSignedPair(counts map[Card]int) bool {
	for c, n := range counts {
		if c > 0 && n >= 1 && counts[-c] >= 1 {
			return true
		}
	}
	return false
}

// Key returns the full comparison tuple: the rank followed by the
// tie-breakers.
func (e Evaluation) Key() []int {
	key := make([]int, 0, len(e.TieBreakers)+1)
	key = append(key, e.Rank)
	key = append(key, e.TieBreakers...)
	return key
}

// Compare orders two evaluations: -1 when a is strictly better, +1 when b
// is, 0 for a true tie.
func Compare(a, b Evaluation) int {
	ka, kb := a.Key(), b.Key()
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			if ka[i] < kb[i] {
				return -1
			}
			return 1
		}
	}
	// Equal ranks always produce equal-length keys; this is for safety only.
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	default:
		return 0
	}
}
