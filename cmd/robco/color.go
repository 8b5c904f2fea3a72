package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/vyevs/ansi"
)

func colorEnabled(mode string) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}

	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// highlightMatches colors the positions of word that line up with guess.
func highlightMatches(word, guess string) string {
	wr := []rune(word)
	gr := []rune(guess)

	var b strings.Builder
	b.Grow(len(word) + 16)

	for i, r := range wr {
		if i < len(gr) && gr[i] == r {
			b.WriteString(ansi.FGColorName("green"))
			b.WriteRune(r)
			b.WriteString(ansi.Clear)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func successWord(word string) string {
	return ansi.FGColorName("green") + word + ansi.Clear
}
