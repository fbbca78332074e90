package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Categories(t *testing.T) {
	cases := []struct {
		name     string
		cards    []Card
		wantType HandType
		wantRank int
		wantTie  []int
	}{
		{
			name:     "pure sabacc",
			cards:    []Card{0, 0},
			wantType: PureSabacc,
			wantRank: 1,
			wantTie:  []int{},
		},
		{
			name:     "full sabacc",
			cards:    []Card{10, 10, -10, -10, 0},
			wantType: FullSabacc,
			wantRank: 2,
			wantTie:  []int{},
		},
		{
			name:     "yee-haa: one zero plus a matched pair",
			cards:    []Card{10, -10, 0},
			wantType: YeeHaa,
			wantRank: 3,
			wantTie:  []int{10},
		},
		{
			name:     "yee-haa picks smallest nonzero for the tie-break",
			cards:    []Card{0, 3, 3, -6},
			wantType: YeeHaa,
			wantRank: 3,
			wantTie:  []int{3},
		},
		{
			name:     "rule of two",
			cards:    []Card{5, -5, 3, -3},
			wantType: RuleOfTwo,
			wantRank: 4,
			wantTie:  []int{3},
		},
		{
			name:     "rule of two counts the zero pair",
			cards:    []Card{0, 0, 3, -3},
			wantType: RuleOfTwo,
			wantRank: 4,
			wantTie:  []int{0},
		},
		{
			name:     "sabacc pair",
			cards:    []Card{3, -3},
			wantType: SabaccPair,
			wantRank: 5,
			wantTie:  []int{3},
		},
		{
			name:     "plain zero-total sabacc",
			cards:    []Card{4, -1, -3},
			wantType: Sabacc,
			wantRank: 6,
			wantTie:  []int{1, -3, -4, -4},
		},
		{
			name:     "nulrhek positive total",
			cards:    []Card{5, -3},
			wantType: Nulrhek,
			wantRank: 10,
			wantTie:  []int{2, 0, -2, -5, -5},
		},
		{
			name:     "nulrhek negative total",
			cards:    []Card{-5, 3},
			wantType: Nulrhek,
			wantRank: 10,
			wantTie:  []int{2, 1, -2, -3, -3},
		},
		{
			name:     "nulrhek with no positive cards",
			cards:    []Card{-1, -2},
			wantType: Nulrhek,
			wantRank: 10,
			wantTie:  []int{3, 1, -2, 0, noPositive},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Evaluate(tc.cards)
			assert.Equal(t, tc.wantType, e.Type)
			assert.Equal(t, tc.wantRank, e.Rank)
			assert.Equal(t, tc.wantTie, e.TieBreakers)
		})
	}
}

func TestEvaluate_TotalCarried(t *testing.T) {
	assert.Equal(t, 2, Evaluate([]Card{5, -3}).Total)
	assert.Equal(t, 0, Evaluate([]Card{3, -3}).Total)
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	hands := [][]Card{
		{0, 0},
		{10, 10, -10, -10, 0},
		{4, -1, -3},
		{5, -3, 7, -9, 2},
		{0, 3, 3, -6},
	}

	for _, cards := range hands {
		want := Evaluate(cards)
		for i := 0; i < 10; i++ {
			shuffled := append([]Card(nil), cards...)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			assert.Equal(t, want, Evaluate(shuffled), "hand %v order %v", cards, shuffled)
		}
	}
}

func TestCompare_Ordering(t *testing.T) {
	cases := []struct {
		name   string
		better []Card
		worse  []Card
	}{
		{name: "pure sabacc beats yee-haa", better: []Card{0, 0}, worse: []Card{10, -10, 0}},
		{name: "small pair beats big pair", better: []Card{3, -3}, worse: []Card{5, -5}},
		{name: "any zero total beats nulrhek", better: []Card{4, -1, -3}, worse: []Card{1}},
		{name: "closer to zero wins nulrhek", better: []Card{2, -1}, worse: []Card{5, -3}},
		{name: "positive total beats equal negative", better: []Card{5, -3}, worse: []Card{-5, 3}},
		{name: "more cards wins equal nulrhek total", better: []Card{1, 2, -2}, worse: []Card{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := Evaluate(tc.better), Evaluate(tc.worse)
			assert.Equal(t, -1, Compare(a, b))
			assert.Equal(t, 1, Compare(b, a))
		})
	}
}

func TestCompare_TrueTie(t *testing.T) {
	// Different card instances, same values: identical keys, a shared win.
	a := Evaluate([]Card{2, -2})
	b := Evaluate([]Card{2, -2})
	require.Equal(t, 0, Compare(a, b))
	require.Equal(t, a.Key(), b.Key())
}

func TestCompare_Totality(t *testing.T) {
	hands := [][]Card{
		{0, 0}, {10, 10, -10, -10, 0}, {10, -10, 0}, {5, -5, 3, -3},
		{3, -3}, {4, -1, -3}, {5, -3}, {-5, 3}, {1}, {2, -2},
	}
	for i, x := range hands {
		for j, y := range hands {
			got := Compare(Evaluate(x), Evaluate(y))
			rev := Compare(Evaluate(y), Evaluate(x))
			assert.Equal(t, -rev, got, "hands %d vs %d not antisymmetric", i, j)
			if i == j {
				assert.Equal(t, 0, got)
			}
		}
	}
}
