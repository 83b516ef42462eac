package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "import-clins <contract-id> <file>",
		Short:   "Import a CLIN schedule from a CSV or XLSX file",
		GroupID: "contracts",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[:1])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			clins, err := a.client().ImportClins(cmd.Context(), ids[0], filepath.Base(args[1]), f)
			if err != nil {
				return withFields(err)
			}

			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), wire.FromClins(clins))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d CLINs.\n", len(clins))

			return nil
		},
	}
}

// withFields appends the per-row messages of a rejected import.
func withFields(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return err
	}

	keys := make([]string, 0, len(apiErr.Fields))
	for k := range apiErr.Fields {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	msg := apiErr.Message
	for _, k := range keys {
		msg += fmt.Sprintf("\n  %s: %s", k, apiErr.Fields[k])
	}

	return errors.New(msg)
}
