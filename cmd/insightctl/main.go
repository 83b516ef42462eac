// Command insightctl administers the contract service and scripts the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/config"
)

type app struct {
	cfg        *config.Config
	baseURL    string
	jsonOutput bool

	api *client.HTTPClient
}

// client returns the API client, built on first use so that commands that
// only touch the database or the signing secret never need a server.
func (a *app) client() *client.HTTPClient {
	if a.api == nil {
		baseURL := a.cfg.Client.BaseURL
		if a.baseURL != "" {
			baseURL = a.baseURL
		}

		a.api = client.NewHTTPClient(baseURL, a.cfg.Client.Token, a.cfg.Client.Timeout)
	}

	return a.api
}

func (a *app) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "insightctl <command>",
		Short:         "Administer and script the Insight contract service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg != nil {
				return nil
			}

			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.baseURL, "api-url", "", "API base URL (default $API_BASE_URL)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output as JSON")

	root.AddGroup(
		&cobra.Group{ID: "contracts", Title: "Contracts:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	root.AddCommand(
		newListCmd(a),
		newSummaryCmd(a),
		newExecuteCmd(a),
		newImportCmd(a),
		newReportCmd(a),
		newMigrateCmd(a),
		newTokenCmd(a),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
