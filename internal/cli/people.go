package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yildizm/swdex/internal/formatter"
	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/people"
)

var peopleOutputFile string

func newPeopleCommand() *cobra.Command {
	peopleCmd := &cobra.Command{
		Use:   "people",
		Short: "Print characters without the interactive browser",
		Long: `Fetch the people list once and print it, or print a single character
by exact name. Output follows --output (text, json, markdown, csv).`,
	}

	peopleCmd.PersistentFlags().StringVar(&peopleOutputFile, "output-file", "", "save output to file instead of stdout")

	peopleCmd.AddCommand(newPeopleListCommand())
	peopleCmd.AddCommand(newPeopleShowCommand())

	return peopleCmd
}

func newPeopleListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every character in fetch order",
		Example: `  # Tree view
  swdex people list

  # JSON for scripting
  swdex people list -o json`,
		Args: cobra.NoArgs,
		RunE: runPeopleList,
	}
}

func newPeopleShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one character by exact name",
		Long: `Show the first character whose name matches exactly. When nothing
matches, nothing is printed and the command still succeeds.`,
		Example: `  swdex people show "Luke Skywalker"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runPeopleShow,
	}
}

func runPeopleList(cmd *cobra.Command, args []string) error {
	f, records, closeLog, err := preparePeople(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	output, err := f.FormatList(records)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return handleOutputDestination(cmd, output)
}

func runPeopleShow(cmd *cobra.Command, args []string) error {
	f, records, closeLog, err := preparePeople(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	record, ok := people.FindByName(records, args[0])
	if !ok {
		newLogger("cli").InfoWithFields("no character with that name", []logger.Field{logger.F("name", args[0])})
		return nil
	}

	output, err := f.FormatDetail(record)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return handleOutputDestination(cmd, output)
}

// preparePeople loads config, picks the formatter and runs the fetch. The
// caller closes the log sink once it is done logging.
func preparePeople(cmd *cobra.Command) (formatter.Formatter, []people.Record, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	closeLog, err := configureLogging(cfg, false)
	if err != nil {
		return nil, nil, nil, err
	}

	f, err := formatter.New(getOutputFormat(), isColorEnabled())
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}

	records, err := fetchPeople(cmd.Context(), cfg)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}
	return f, records, closeLog, nil
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(cmd *cobra.Command, output []byte) error {
	if peopleOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}

	if err := writeOutputBytesToFile(output, peopleOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output saved to: %s\n", peopleOutputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
