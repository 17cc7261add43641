package cmd

import (
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/spellfix/internal/logger"
	"github.com/trknhr/spellfix/internal/tui"
)

// OpenFileForTTY is swapped out in tests to avoid touching /dev/tty.
var OpenFileForTTY = os.OpenFile

func NewTuiCmd(db *sql.DB) *cobra.Command {
	var freqDict string
	var noDict bool

	cmd := &cobra.Command{
		Use:   "tui <training-file> [word]",
		Short: "Launch an interactive correction session",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 1 {
				initial = args[1]
			}
			s, err := buildSpeller(db, args[0], freqDict, noDict)
			if err != nil {
				return err
			}
			model := tui.NewSessionModel(s, initial)

			tty, err := OpenFileForTTY("/dev/tty", os.O_RDWR, 0)
			if err != nil {
				logger.Error("%v", err)
			}
			defer tty.Close()

			p := tea.NewProgram(model, tea.WithAltScreen(),
				tea.WithInput(tty),
				tea.WithOutput(os.Stderr),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			fmt.Println(model.SelectedText())
			return nil
		},
	}
	cmd.Flags().StringVar(&freqDict, "freq-dict", "", "path to a pre-counted frequency dictionary (one 'word count' pair per line)")
	cmd.Flags().BoolVar(&noDict, "no-dict", false, "skip the persistent custom dictionary")

	return cmd
}
