// Package robco narrows a pool of terminal password candidates using
// the likeness feedback RobCo terminals print for each failed guess:
// the number of character positions the guess shares with the real
// password. Every word that could still explain all of the observed
// likeness values is a viable next guess.
package robco

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failure kinds, distinguishable via errors.Is.
var (
	ErrNoInput     = errors.New("no input")
	ErrBadDistance = errors.New("bad distance")
)

// Password is one pool entry: either a candidate (word only) or a
// witness (word plus the likeness the terminal reported for it).
// The zero value is an empty candidate.
type Password struct {
	word     string
	distance int
	witness  bool
}

// Candidate returns a Password with no known distance.
func Candidate(word string) Password {
	return Password{word: word}
}

// Witness returns a Password annotated with its observed distance.
func Witness(word string, distance int) Password {
	return Password{word: word, distance: distance, witness: true}
}

// Word returns the word text for either variant.
func (p Password) Word() string { return p.word }

// Distance returns the witnessed distance and whether one was recorded.
func (p Password) Distance() (int, bool) { return p.distance, p.witness }

// ClosenessTo returns the positional match count between p and other.
func (p Password) ClosenessTo(other Password) int {
	return Closeness(p.word, other.word)
}

// Closeness returns the number of positions at which a and b hold the
// same rune. Comparison stops at the end of the shorter word, so any
// excess length in the longer word contributes nothing.
func Closeness(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	n := min(len(ar), len(br))

	var ct int
	for i := 0; i < n; i++ {
		if ar[i] == br[i] {
			ct++
		}
	}
	return ct
}

// ParsePassword parses one input line. A single token parses to a
// candidate, two or more tokens to a witness using the first two.
// Tokens past the second are ignored.
func ParsePassword(line string) (Password, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Password{}, ErrNoInput
	case 1:
		return Candidate(fields[0]), nil
	default:
		d, err := strconv.Atoi(fields[1])
		if err != nil || d < 0 {
			return Password{}, fmt.Errorf("%w %q", ErrBadDistance, fields[1])
		}
		return Witness(fields[0], d), nil
	}
}
