package service

import (
	"sort"
	"strings"
)

// similarity scores two normalized names in [0,1] as advisory context on a
// fuzzy pair; the match decision itself is equality/containment. Takes the
// better of plain and token-sorted distance so word order does not punish
// otherwise identical names.
func similarity(a, b string) float64 {
	x := dlSimilarity(a, b)
	if y := dlSimilarity(tokenSort(a), tokenSort(b)); y > x {
		return y
	}
	return x
}

func dlSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

func damerauLevenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			// insert / delete / substitute
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)

			// transposition of adjacent runes
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := dp[i-2][j-2] + 1; v < dp[i][j] {
					dp[i][j] = v
				}
			}
		}
	}
	return dp[al][bl]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
