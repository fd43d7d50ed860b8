package cli

import (
	"github.com/spf13/cobra"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share <source-url>",
	Short: "Print a page link that reopens a source",
	Long: `Load a source and print a link to the AltAdder page that loads it again.

The link points at --base, or server.public_url from the config file.

Examples:
  altadder share https://example.com/apps.json
  altadder share altstore.io --base https://altadder.example.com/ --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <source-url>",
	Short: "Copy a source's resolved URL to the clipboard",
	Long: `Load a source and copy its resolved URL to the clipboard.

Examples:
  altadder copy altstore.io`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

// Share command flags
var (
	shareBaseURL string
	shareCopy    bool
)

func init() {
	shareCmd.Flags().StringVar(&shareBaseURL, FlagBase, "", DescBase)
	shareCmd.Flags().BoolVar(&shareCopy, FlagCopy, false, DescCopy)
}

func runShare(cmd *cobra.Command, args []string) error {
	sess, v, err := loadSource(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	base := shareBase(shareBaseURL)
	link, err := v.ShareLink(base)
	if err != nil {
		return err
	}
	printResult(link + "\n")

	if shareCopy {
		notice, err := sess.CopyShareLink(base)
		if err != nil {
			printErrorMsg(notice.Message)
			return err
		}
		printSuccess(notice.Message)
	}
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	sess, _, err := loadSource(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	notice, err := sess.CopySourceURL()
	if err != nil {
		printErrorMsg(notice.Message)
		return err
	}
	printSuccess(notice.Message)
	return nil
}
