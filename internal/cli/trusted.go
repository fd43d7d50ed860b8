package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/app"
)

// trustedCmd represents the trusted command
var trustedCmd = &cobra.Command{
	Use:   "trusted",
	Short: "List the trusted sources",
	Long: `Fetch every trusted source and list the ones that load.

Trusted sources get a "Trusted" badge when displayed. Sources that fail to
load are left out.

Examples:
  altadder trusted
  altadder trusted --json`,
	Args: cobra.NoArgs,
	RunE: runTrusted,
}

var trustedJSON bool

func init() {
	trustedCmd.Flags().BoolVar(&trustedJSON, FlagJSON, false, DescJSON)
}

func runTrusted(cmd *cobra.Command, args []string) error {
	l := newLoader(currentConfig(), nil)
	cards := app.TrustedCards(commandContext(cmd), l, trustRegistry)

	if trustedJSON {
		if cards == nil {
			return printJSON([]struct{}{})
		}
		return printJSON(cards)
	}
	printHeader("Trusted Sources")
	printResult(terminal.Cards(cards))
	return nil
}
