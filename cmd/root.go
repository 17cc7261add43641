package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trknhr/spellfix/internal/corpus"
	"github.com/trknhr/spellfix/internal/dict"
	"github.com/trknhr/spellfix/internal/logger"
	"github.com/trknhr/spellfix/internal/speller"
)

func NewRootCmd(db *sql.DB) *cobra.Command {
	var freqDict string
	var noDict bool

	cmd := &cobra.Command{
		Use:   "spellfix <training-file> <word>",
		Short: "Correct a misspelled word using a corpus-trained frequency model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSpeller(db, args[0], freqDict, noDict)
			if err != nil {
				return err
			}
			word := args[1]
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", word, s.Correct(word))
			return nil
		},
	}
	cmd.Flags().StringVar(&freqDict, "freq-dict", "", "path to a pre-counted frequency dictionary (one 'word count' pair per line)")
	cmd.Flags().BoolVar(&noDict, "no-dict", false, "skip the persistent custom dictionary")

	cmd.AddCommand(NewTuiCmd(db))
	cmd.AddCommand(NewDictCmd(db))

	return cmd
}

// buildSpeller trains a fresh speller on the corpus file, then layers in the
// optional frequency dictionary and the persistent custom words.
func buildSpeller(db *sql.DB, corpusPath, freqDict string, noDict bool) (*speller.Speller, error) {
	text, err := corpus.Load(corpusPath)
	if err != nil {
		return nil, err
	}

	s := speller.New()
	s.Train(text)
	logger.Debug("trained on %s: %d distinct words", corpusPath, len(s.Counts))

	if freqDict != "" {
		entries, err := corpus.LoadFrequencyDict(freqDict)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			s.AddEntry(e.Word, e.Count)
		}
	}

	if !noDict && db != nil {
		words, err := dict.NewSQLDictStore(db).All()
		if err != nil {
			logger.Warn("failed to load custom dictionary: %v", err)
		} else {
			for _, w := range words {
				s.AddEntry(w, dict.CustomWordBoost)
			}
		}
	}

	return s, nil
}

func Execute(db *sql.DB) error {
	return NewRootCmd(db).Execute()
}
