package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trknhr/spellfix/internal/dict"
)

func NewDictCmd(db *sql.DB) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the persistent custom word dictionary",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the custom dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dict.NewSQLDictStore(db).Add(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the custom dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dict.NewSQLDictStore(db).Remove(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all custom words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := dict.NewSQLDictStore(db).All()
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	})

	return cmd
}
