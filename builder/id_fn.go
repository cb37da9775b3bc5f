// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based node index to a node name.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10: "0","1",...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn renders idx as spreadsheet-style letters: "A".."Z","AA","AB",...
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+idx, e.g. "v0","v1",...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs names nodes "A","B",...
func WithLetterIDs() BuilderOption { return WithIDScheme(LetterIDFn) }

// WithPrefixIDs names nodes prefix+"0", prefix+"1", ...
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
