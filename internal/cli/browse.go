package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/app"
	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/source/loader"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively load and share sources",
	Long: `Start an interactive session that works like the web page: enter a
source URL, look at it, copy its share link or source URL, then go back and
enter another one.

Press Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var browseBaseURL string

func init() {
	browseCmd.Flags().StringVar(&browseBaseURL, FlagBase, "", DescBase)
}

// Browse actions offered while a source is displayed.
const (
	actionCopyShare  = "Copy share link"
	actionCopySource = "Copy source URL"
	actionShowShare  = "Show share link"
	actionBack       = "Load another source"
	actionQuit       = "Quit"
)

var browseActions = []string{actionCopyShare, actionCopySource, actionShowShare, actionBack, actionQuit}

// newPrompter is replaced in tests.
var newPrompter = func() prompter { return surveyPrompter{} }

func runBrowse(cmd *cobra.Command, args []string) error {
	err := browse(commandContext(cmd), newSession(), newPrompter(), shareBase(browseBaseURL))
	if errors.Is(err, errPromptAborted) {
		return nil
	}
	return err
}

// browse drives sess from user input until the user quits.
func browse(ctx context.Context, sess *app.Session, p prompter, base string) error {
	for {
		switch sess.State() {
		case app.Idle, app.ErrorShown:
			if err := sess.Err(); err != nil {
				printErrorMsg(err.Error())
			}
			raw, err := p.Input("Source URL:", `e.g. https://example.com/apps.json, or "altstore.io"`)
			if err != nil {
				return err
			}
			if _, err := sess.Load(ctx, raw); err != nil && !isLoadError(err) {
				return err
			}

		case app.Displaying:
			v, _ := sess.Current()
			printResult(terminal.Source(v.Model, ""))

			if done, err := browseDisplayed(sess, p, base); done || err != nil {
				return err
			}

		default:
			debug.Debug("[cli] Unexpected session state %s", sess.State())
			return nil
		}
	}
}

// browseDisplayed runs actions on the displayed source until the user goes
// back or quits. It reports whether the user quit.
func browseDisplayed(sess *app.Session, p prompter, base string) (bool, error) {
	for {
		action, err := p.Select("What next?", browseActions)
		if err != nil {
			return true, err
		}

		switch action {
		case actionCopyShare:
			reportNotice(sess.CopyShareLink(base))
		case actionCopySource:
			reportNotice(sess.CopySourceURL())
		case actionShowShare:
			link, err := sess.ShareLink(base)
			if err != nil {
				printErrorMsg(err.Error())
				continue
			}
			printResult(link + "\n")
		case actionBack:
			sess.Back()
			return false, nil
		case actionQuit:
			return true, nil
		}
	}
}

func reportNotice(notice app.Notice, err error) {
	if err != nil {
		debug.Debug("[cli] %v", err)
	}
	if notice.OK {
		printSuccess(notice.Message)
		return
	}
	printErrorMsg(notice.Message)
}

// isLoadError reports whether err is shown to the user rather than ending
// the session.
func isLoadError(err error) bool {
	_, ok := loader.TypeOf(err)
	return ok || app.IsStaleResult(err)
}
