package cli

import (
	"time"

	"github.com/spf13/cobra"

	"calccli/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words <input-file>",
	Short: "Count word frequencies in a text file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	_, writer, logger, err := setup()
	if err != nil {
		return err
	}

	start := time.Now()
	path := args[0]

	frequencies, err := words.CountFile(path, logger)
	if err != nil {
		return err
	}

	text := words.FormatReport(path, frequencies, time.Since(start))
	if len(frequencies) == 0 {
		writer.Echo(text)
		return nil
	}

	_, err = writer.Publish(words.ResultsFileName, text)
	return err
}
