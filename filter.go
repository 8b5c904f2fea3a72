package robco

import (
	"errors"
	"fmt"
)

// ErrNoWitness is returned by Filter when no input word carries a
// distance: there is no information to narrow the pool with.
var ErrNoWitness = errors.New("at least one word must have a known distance")

// ErrLengthMismatch is returned by UniformLength when the pool mixes
// word lengths.
var ErrLengthMismatch = errors.New("words are not all the same length")

// Filter returns every word consistent with all witnessed distances:
// the intersection, across witnesses, of the words whose closeness to
// that witness equals its recorded distance. Each survivor appears
// once; order is unspecified.
func Filter(passwords []Password) ([]string, error) {
	sets := make([]map[string]struct{}, 0, len(passwords))
	for _, p := range passwords {
		d, ok := p.Distance()
		if !ok {
			continue
		}
		sets = append(sets, consistencySet(p, d, passwords))
	}

	if len(sets) == 0 {
		return nil, ErrNoWitness
	}

	survivors := make([]string, 0, len(sets[0]))
OUTER:
	for word := range sets[0] {
		for _, set := range sets[1:] {
			if _, ok := set[word]; !ok {
				continue OUTER
			}
		}
		survivors = append(survivors, word)
	}

	return survivors, nil
}

// consistencySet collects every pool word whose closeness to w equals
// d. w itself is a member only when d equals its full length, which
// never happens in practice: witnesses are prior failed guesses.
func consistencySet(w Password, d int, pool []Password) map[string]struct{} {
	set := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		if p.ClosenessTo(w) == d {
			set[p.Word()] = struct{}{}
		}
	}
	return set
}

// Narrow returns a new pool containing the words whose closeness to
// guess is exactly distance. It is the single-constraint form of
// Filter, applied once per round of an interactive session.
func Narrow(pool []string, guess string, distance int) []string {
	next := make([]string, 0, len(pool))
	for _, w := range pool {
		if Closeness(w, guess) == distance {
			next = append(next, w)
		}
	}
	return next
}

// UniformLength reports whether every word in the pool has the same
// rune length. Closeness silently truncates to the shorter word, so
// mixed lengths are legal but usually indicate a bad paste.
func UniformLength(passwords []Password) error {
	if len(passwords) == 0 {
		return nil
	}

	want := len([]rune(passwords[0].Word()))
	for _, p := range passwords[1:] {
		if got := len([]rune(p.Word())); got != want {
			return fmt.Errorf("%w: %q is %d characters, want %d", ErrLengthMismatch, p.Word(), got, want)
		}
	}
	return nil
}
