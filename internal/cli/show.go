package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/debug"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <source-url>",
	Short: "Load a source and display it",
	Long: `Load an AltStore-compatible source and display its name, trust badge,
install links and apps.

The direct fetch falls back once to the relay endpoint (http.relay_url).
"altstore.io" and "apps.altstore.io" are shorthands for the AltStore catalog.

Examples:
  altadder show https://example.com/apps.json
  altadder show altstore.io
  altadder show https://example.com/apps.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// linksCmd represents the links command
var linksCmd = &cobra.Command{
	Use:   "links <source-url>",
	Short: "Print the installer deep links for a source",
	Long: `Load a source and print one deep link per installer.

Examples:
  altadder links https://example.com/apps.json
  altadder links altstore.io --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

// Show and links command flags
var (
	showJSON  bool
	linksJSON bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, FlagJSON, false, DescJSON)
	linksCmd.Flags().BoolVar(&linksJSON, FlagJSON, false, DescJSON)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, v, err := loadSource(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	debug.DebugValue("resolved", v.SourceURL())
	debug.DebugValue("via relay", v.Result.ViaRelay)
	debug.DebugJSON("[cli] Presentation model", v.Model)

	if showJSON {
		return printJSON(v.Model)
	}

	if v.Result.ViaRelay {
		printWarning("Direct fetch failed, loaded through the relay")
	}

	link, err := v.ShareLink(shareBase(""))
	if err != nil {
		debug.Debug("[cli] Share link unavailable: %v", err)
		link = ""
	}
	printResult(terminal.Source(v.Model, link))
	return nil
}

func runLinks(cmd *cobra.Command, args []string) error {
	_, v, err := loadSource(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	if linksJSON {
		return printJSON(v.Model.DeepLinks)
	}
	printResult(terminal.Links(v.Model.DeepLinks))
	return nil
}
