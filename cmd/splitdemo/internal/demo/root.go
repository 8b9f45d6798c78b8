// Package demo wires the bubblesplit reference binding into a runnable
// cobra command, the same thin shell the retrieval pack's own CLIs use
// around a cobra.Command var.
package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/resonantlabs/splitview/bubblesplit"
	"github.com/resonantlabs/splitview/splitview"
)

var (
	paneCount int
	vertical  bool
)

var rootCmd = &cobra.Command{
	Use:   "splitdemo",
	Short: "Run an interactive demo of the splitview engine",
	Long:  "Lays out a row or column of labeled panes separated by draggable sashes, backed by splitview.Engine.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(paneCount, vertical)
	},
}

func init() {
	rootCmd.Flags().IntVar(&paneCount, "panes", 3, "number of panes to split")
	rootCmd.Flags().BoolVar(&vertical, "vertical", false, "stack panes vertically instead of side by side")
}

// Execute runs the splitdemo root command.
func Execute() error {
	return rootCmd.Execute()
}

var paneColors = []string{"81", "212", "214", "120", "99"}

func run(panes int, vertical bool) error {
	if panes < 2 {
		return fmt.Errorf("splitdemo: --panes must be at least 2, got %d", panes)
	}

	zone.NewGlobal()
	defer zone.Close()

	children := make([]tea.Model, panes)
	descriptors := make([]*splitview.Descriptor, panes)
	for i := 0; i < panes; i++ {
		color := paneColors[i%len(paneColors)]
		children[i] = newPane(fmt.Sprintf("pane %d", i), color)
		descriptors[i] = &splitview.Descriptor{
			Min:     10,
			Max:     splitview.Unbounded,
			Prio:    splitview.PriorityNormal,
			CanSnap: i == 0,
		}
	}

	orientation := splitview.Horizontal
	if vertical {
		orientation = splitview.Vertical
	}

	container, err := bubblesplit.New(children, descriptors, splitview.Options{
		Orientation: orientation,
	})
	if err != nil {
		return fmt.Errorf("splitdemo: %w", err)
	}

	program := tea.NewProgram(
		container,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = program.Run()
	return err
}
