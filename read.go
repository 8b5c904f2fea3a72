package robco

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPasswords reads one record per line from r until end of stream.
// The read is strict: the first malformed line or read failure aborts
// with an error and no partial record list is returned.
func ReadPasswords(r io.Reader) ([]Password, error) {
	sc := bufio.NewScanner(r)

	passwords := make([]Password, 0, 32)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		p, err := ParsePassword(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		passwords = append(passwords, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return passwords, nil
}

// ReadPasswordsFromFile uses ReadPasswords to read from the specified file.
func ReadPasswordsFromFile(file string) ([]Password, error) {
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}
	return ReadPasswords(bytes.NewReader(bs))
}

// ReadWordList reads a newline-delimited list of candidate words from r.
// Words are trimmed and lowercased; blank lines are skipped.
func ReadWordList(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := make([]string, 0, 1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}

	return words, nil
}

// ReadWordListFromFile uses ReadWordList to read from the specified file.
func ReadWordListFromFile(file string) ([]string, error) {
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}
	return ReadWordList(bytes.NewReader(bs))
}
