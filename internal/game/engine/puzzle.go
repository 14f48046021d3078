package engine

import "slices"

// Unscramble solves the word puzzle by reversing text rune by rune.
// Case and spacing are kept as given.
func Unscramble(text string) string {
	r := []rune(text)
	slices.Reverse(r)
	return string(r)
}
