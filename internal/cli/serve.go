package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/metrics"
	"github.com/tacogips/altadder/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the AltAdder web page",
	Long: `Serve the AltAdder page: a source URL form with the trusted sources,
the source view with install links, and share links that reopen a source.

Endpoints:
  /                 page (?source=<url> loads a source)
  /api/source?url=  presentation model as JSON
  /healthz          health check
  /metrics          Prometheus metrics

Examples:
  altadder serve
  altadder serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, FlagAddr, "", DescAddr)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	collector := metrics.New()
	srv := server.New(server.Options{
		Loader:    newLoader(cfg, collector),
		Registry:  trustRegistry,
		Metrics:   collector.Handler(),
		PublicURL: cfg.Server.PublicURL,
	})

	printInfo("Serving AltAdder on " + addr)
	if err := srv.ListenAndServe(commandContext(cmd), addr); err != nil {
		return err
	}
	printInfo("Server stopped")
	return nil
}
