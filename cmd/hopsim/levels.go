package main

import (
	"fmt"

	"github.com/automoto/hopdrop/assets"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := assets.LoadLevels()
	if err != nil {
		return err
	}

	fmt.Printf("  %-3s  %-12s  %-9s  %s\n", "#", "Name", "Size", "Enemies")
	fmt.Printf("  %-3s  %-12s  %-9s  %s\n", "-", "----", "----", "-------")
	for i, l := range levels {
		size := fmt.Sprintf("%.0fx%.0f", l.Width, l.Height)
		fmt.Printf("  %-3d  %-12s  %-9s  %d\n", i, l.Name, size, len(l.Enemies))
	}
	return nil
}
