package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/app"
	"github.com/tacogips/altadder/internal/config"
	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/render"
	"github.com/tacogips/altadder/internal/source/loader"
	"github.com/tacogips/altadder/internal/source/trust"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// Command state shared by subcommands, set up in PersistentPreRunE.
var (
	appConfig *config.Config
	terminal  *render.Terminal = render.NewTerminal(false)
	stdout    io.Writer        = os.Stdout
	stderr    io.Writer        = os.Stderr
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "altadder",
	Short: "Add AltStore-compatible sources to iOS installers",
	Long: `altadder loads an AltStore-compatible source, shows its apps and
produces install links for AltStore, SideStore, Feather and LiveContainer.

Use "altadder show <url>" to inspect a source, "altadder share <url>" to get
a shareable page link, or "altadder serve" to run the web page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		debug.SetOutput(cmd.ErrOrStderr())

		stdout = cmd.OutOrStdout()
		stderr = cmd.ErrOrStderr()

		cfg, err := loadConfig(cmd.Annotations[annotationConfigOptional] == "true")
		if err != nil {
			return err
		}
		appConfig = cfg

		color := cfg.Output.Color && render.ColorEnabled(stdout, globalNoColor)
		terminal = render.NewTerminal(color)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// ctx is cancelled on interrupt.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(trustedCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// annotationConfigOptional marks commands that run with defaults when the
// file named by --config is missing.
const annotationConfigOptional = "altadder/config-optional"

// loadConfig loads the configuration file. A missing file at the default
// location yields defaults; a missing file named by --config is an error
// unless optional is set.
func loadConfig(optional bool) (*config.Config, error) {
	l := config.NewLoader()
	if globalConfigPath != "" && !optional {
		debug.Debug("[cli] Loading config from %s", globalConfigPath)
		return l.Load(globalConfigPath)
	}
	path := globalConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	debug.Debug("[cli] Loading config from %s (optional)", path)
	return l.LoadOrDefault(path)
}

// currentConfig returns the loaded configuration, or defaults when no
// command hook ran.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// Dependencies replaced in tests.
var (
	newLoader = func(cfg *config.Config, recorder loader.Recorder) *loader.Loader {
		return loader.NewFromConfig(cfg, recorder)
	}
	trustRegistry                 = trust.Default()
	clipboardWriter app.Clipboard = app.SystemClipboard{}
)

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}
