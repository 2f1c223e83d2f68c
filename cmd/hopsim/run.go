package main

import (
	"fmt"
	"os"

	"github.com/automoto/hopdrop/assets"
	"github.com/automoto/hopdrop/session"
	"github.com/automoto/hopdrop/shared/leveldata"
	"github.com/automoto/hopdrop/sim"
	"github.com/automoto/hopdrop/storage"
	"github.com/spf13/cobra"
)

var (
	flagRecord bool
	flagTail   int
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Play a scripted input recording",
	Long: `Play a YAML input script against the embedded levels and print a summary.

A script holds the keys for runs of frames:

  level: 01_tower
  steps:
    - frames: 40
      right: true
      jump: true
    - frames: 1
      right: true`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Save run outcomes to the scores database")
	runCmd.Flags().IntVar(&flagTail, "tail", 120, "Idle frames played after the script")
}

func runScript(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := sim.ParseScript(data)
	if err != nil {
		return err
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		return err
	}
	start, err := levelIndex(levels, script.Level)
	if err != nil {
		return err
	}

	opts := session.Options{
		Levels:     levels,
		StartLevel: start,
		Logger:     logger,
	}
	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}

	sess, err := session.New(opts)
	if err != nil {
		return err
	}
	res, err := sim.Run(sess, script, flagTail)
	if err != nil {
		return err
	}

	fmt.Printf("Level:     %s\n", res.Level)
	fmt.Printf("Frames:    %d\n", res.Frames)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Best:      %d\n", res.Stats.BestScore)
	fmt.Printf("Attempts:  %d\n", res.Stats.Attempts)
	fmt.Printf("Deaths:    %d\n", res.Stats.Deaths)
	fmt.Printf("Finishes:  %d\n", res.Stats.Finishes)
	return nil
}

// levelIndex finds a level by name; an empty name is the first level.
func levelIndex(levels []*leveldata.Level, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, l := range levels {
		if l.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q, run 'hopsim levels' to list them", name)
}
