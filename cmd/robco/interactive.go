package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vyevs/vtools"

	"github.com/archer884/robco"
)

// maxTableWords caps the rendered pool so a huge word list doesn't
// scroll the prompt off the screen.
const maxTableWords = 60

func newInteractiveCommand(configFlag *string) *cobra.Command {
	var dictFlag string
	var fileFlag string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Narrow the pool one guess at a time",
		Long: `Loads a candidate pool from a word list or a record file, then
repeatedly prompts for a guess and the likeness the terminal reported
for it, narrowing the pool after each round until one candidate
remains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			return runInteractive(cfg, dictFlag, fileFlag, verbose)
		},
	}

	cmd.Flags().StringVarP(&dictFlag, "dictionary", "d", "", "word list for the initial pool")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "seed the pool from record lines instead of a word list")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print timing info")

	return cmd
}

func runInteractive(cfg *config, dict, file string, verbose bool) error {
	if dict == "" && file == "" {
		dict = cfg.Dictionary
	}

	var pool []string
	switch {
	case dict != "":
		words, err := robco.ReadWordListFromFile(dict)
		if err != nil {
			return fmt.Errorf("failed to get word list: %v", err)
		}
		if len(words) == 0 {
			return fmt.Errorf("word list %q contains no words", dict)
		}
		pool = words
	case file != "":
		passwords, err := robco.ReadPasswordsFromFile(file)
		if err != nil {
			return err
		}
		pool = seedPool(passwords)
	default:
		return fmt.Errorf("provide a word list with -d or a record file with -f")
	}

	if cfg.StrictLengths {
		candidates := make([]robco.Password, 0, len(pool))
		for _, w := range pool {
			candidates = append(candidates, robco.Candidate(w))
		}
		if err := robco.UniformLength(candidates); err != nil {
			return err
		}
	}

	color := colorEnabled(cfg.Color)

	r := bufio.NewReader(os.Stdin)
	var lastGuess string
	for {
		switch len(pool) {
		case 0:
			fmt.Println("No candidates remain; the password was not in the pool")
			return nil
		case 1:
			word := pool[0]
			if color {
				word = successWord(word)
			}
			fmt.Printf("Password is %s\n", word)
			return nil
		}

		showPool(pool, lastGuess, color)

		fmt.Print("guess> ")
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("read guess: %v", err)
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "quit" || line == "exit" {
			return nil
		}

		p, err := robco.ParsePassword(line)
		if err != nil {
			fmt.Println(`Enter a guess as <word> <likeness>, e.g. "pride 2"`)
			continue
		}
		d, ok := p.Distance()
		if !ok {
			fmt.Println(`Enter the likeness the terminal reported, e.g. "pride 2"`)
			continue
		}

		start := time.Now()
		pool = robco.Narrow(pool, p.Word(), d)
		if verbose {
			vtools.TimeIt(start, "narrowing")
		}
		lastGuess = p.Word()
	}
}

// seedPool builds the starting pool from record lines: every word
// joins the pool, then each witness's likeness narrows it, so the
// session picks up where the recorded guesses left off.
func seedPool(passwords []robco.Password) []string {
	pool := make([]string, 0, len(passwords))
	for _, p := range passwords {
		pool = append(pool, p.Word())
	}

	for _, p := range passwords {
		if d, ok := p.Distance(); ok {
			pool = robco.Narrow(pool, p.Word(), d)
		}
	}

	return pool
}

func showPool(pool []string, lastGuess string, color bool) {
	fmt.Printf("%d candidates remain\n", len(pool))

	show := pool
	truncated := false
	if len(show) > maxTableWords {
		show = show[:maxTableWords]
		truncated = true
	}

	words := show
	if color && lastGuess != "" {
		words = make([]string, len(show))
		for i, w := range show {
			words[i] = highlightMatches(w, lastGuess)
		}
	}

	if t := renderCandidateTable(words); t != "" {
		fmt.Println(t)
	}
	if truncated {
		fmt.Printf("(showing first %d)\n", maxTableWords)
	}
}
