package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yildizm/swdex/internal/navigation"
	"github.com/yildizm/swdex/internal/ui"
)

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse characters interactively",
		Long: `Open the interactive browser. The people list is fetched once in the
background; select a character with enter to see its details and go back
with esc.`,
		Example: `  # Open the browser
  swdex browse

  # Use the high contrast theme
  swdex browse --theme high-contrast`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := configureLogging(cfg, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", closeErr)
		}
	}()

	ui.SetColorDisabled(noColor)
	if cfg.Output.Theme != "" && !ui.SetThemeByName(cfg.Output.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Output.Theme, ui.GetAvailableThemes())
	}

	holder, err := newHolder(cfg)
	if err != nil {
		return err
	}

	nav := navigation.NewNavigator(navigation.New())
	return ui.Run(cmd.Context(), holder, nav, newLogger("ui"))
}
