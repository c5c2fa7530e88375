// Package lcs implements the longest common subsequence similarity engine.
//
// Documents are compared after removing all whitespace. The score is the LCS
// length divided by the mean of the two normalized lengths, counted in code
// points:
//
//	score = LCS(a, b) / ((len(a) + len(b)) / 2)
//
// Because LCS(a, b) <= min(len(a), len(b)) <= mean, the score stays in [0, 1].
package lcs

import (
	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
)

// Buffers larger than these are left to the garbage collector rather than
// held by the pools between calls.
const (
	maxPooledRow   = 4096
	maxPooledRunes = 16384
)

var (
	rowPool  = pool.NewIntRowPool(maxPooledRow)
	runePool = pool.NewRuneBufferPool(1024, maxPooledRunes)
)

// LCSLength returns the length of the longest common subsequence of a and b,
// comparing code points exactly.
//
// It runs the classic dp[i][j] recurrence but keeps only two rows sized to the
// shorter input, so memory is O(min(m, n)) while time stays O(m*n).
func LCSLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Columns follow the shorter sequence.
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)

	prevBuf := rowPool.Get(n + 1)
	currBuf := rowPool.Get(n + 1)
	defer rowPool.Put(prevBuf)
	defer rowPool.Put(currBuf)
	prev, curr := *prevBuf, *currBuf

	for i := 1; i <= len(a); i++ {
		ai := a[i-1]
		for j := 1; j <= n; j++ {
			switch {
			case ai == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// LCSTable builds the full (m+1)x(n+1) table. Row 0 and column 0 are zero and
// table[m][n] equals LCSLength(a, b).
func LCSTable(a, b []rune) [][]int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	return dp
}

// TableCells is the number of cells the full table needs for inputs of m and n
// code points. Time grows with it for every implementation; memory only for
// LCSTable.
func TableCells(m, n int) int64 {
	return int64(m+1) * int64(n+1)
}
