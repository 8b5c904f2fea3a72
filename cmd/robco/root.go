package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"
	"github.com/vyevs/vtools"

	"github.com/archer884/robco"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var fileFlag string
	var dictFlag string
	var verbose bool
	var cpuProfile string

	rootCmd := &cobra.Command{
		Use:   "robco",
		Short: "Narrow terminal password candidates using likeness feedback",
		Long: `Reads one record per line, either "<word>" for a candidate or
"<word> <likeness>" for a previous guess annotated with the number of
character positions the terminal said it got right, then prints every
word that is consistent with all of the observed likeness values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			return runFilter(cfg, fileFlag, dictFlag, verbose, cpuProfile)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "read records from a file instead of stdin")
	rootCmd.Flags().StringVarP(&dictFlag, "dictionary", "d", "", "extra candidate words to merge into the pool")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print timing info")
	rootCmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to file")

	rootCmd.AddCommand(newInteractiveCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

func runFilter(cfg *config, file, dict string, verbose bool, cpuProfile string) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if verbose {
		defer vtools.TimeIt(time.Now(), "filtering")
	}

	var passwords []robco.Password
	var err error
	if file != "" {
		passwords, err = robco.ReadPasswordsFromFile(file)
	} else {
		passwords, err = robco.ReadPasswords(os.Stdin)
	}
	if err != nil {
		return err
	}

	if dict == "" {
		dict = cfg.Dictionary
	}
	if dict != "" {
		words, err := robco.ReadWordListFromFile(dict)
		if err != nil {
			return fmt.Errorf("failed to get dictionary: %v", err)
		}
		for _, w := range words {
			passwords = append(passwords, robco.Candidate(w))
		}
	}

	if cfg.StrictLengths {
		if err := robco.UniformLength(passwords); err != nil {
			return err
		}
	}

	survivors, err := robco.Filter(passwords)
	if err != nil {
		if errors.Is(err, robco.ErrNoWitness) {
			fmt.Println("At least one word must have a known distance")
			return nil
		}
		return err
	}

	for _, w := range survivors {
		fmt.Println(w)
	}

	return nil
}
