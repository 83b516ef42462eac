package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		format string
		outDir string
		remote bool
	)

	cmd := &cobra.Command{
		Use:     "report <contract-id>",
		Short:   "Write a contract report as an Excel workbook or PDF brief",
		GroupID: "contracts",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			var (
				body []byte
				name string
			)

			switch {
			case format != "xlsx" && format != "pdf":
				return fmt.Errorf("unknown format %q (must be xlsx or pdf)", format)
			case remote:
				doc := client.DocumentWorkbook
				if format == "pdf" {
					doc = client.DocumentBrief
				}

				body, name, err = a.client().Download(cmd.Context(), ids[0], doc)
			default:
				body, name, err = renderLocal(cmd, a, ids[0], format)
			}

			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			path := filepath.Join(outDir, filepath.Base(name))
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "xlsx or pdf")
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&remote, "remote", false, "download the server-rendered report instead of rendering locally")

	return cmd
}

// renderLocal reads the contract through the API and renders the report in
// process.
func renderLocal(cmd *cobra.Command, a *app, id uuid.UUID, format string) ([]byte, string, error) {
	data, err := report.Load(cmd.Context(), a.client(), id, time.Now(), a.cfg.Deliverables.DueSoonWindow)
	if err != nil {
		return nil, "", err
	}

	render := report.XLSX
	if format == "pdf" {
		render = report.PDF
	}

	body, err := render(data)
	if err != nil {
		return nil, "", err
	}

	return body, report.Filename(data, format), nil
}
