package utils

import "math/rand"

// ContainsString returns true iff the provided string slice hay contains string
// needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RandomAlphabetString returns a random lowercase string of the given length.
func RandomAlphabetString(length int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	res := make([]rune, length)
	for i := range res {
		res[i] = letters[rand.Intn(len(letters))]
	}
	return string(res)
}
