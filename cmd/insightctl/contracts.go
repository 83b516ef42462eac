package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

func newListCmd(a *app) *cobra.Command {
	var status, agency, search string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List contracts",
		GroupID: "contracts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := contract.ListFilter{Agency: agency, Search: search}

			if status != "" {
				s, err := contract.ParseContractStatus(status)
				if err != nil {
					return err
				}

				filter.Status = &s
			}

			cs, err := a.client().ListContracts(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), wire.FromContracts(cs))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tTITLE\tSTATUS\tVALUE\tFUNDED")

			for _, c := range cs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID,
					c.ContractNumber,
					c.Title,
					c.Status.Label(),
					contract.FormatCurrency(&c.TotalValue),
					contract.FormatCurrency(&c.FundedValue),
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status, e.g. ACTIVE")
	cmd.Flags().StringVar(&agency, "agency", "", "filter by agency")
	cmd.Flags().StringVar(&search, "search", "", "search contract number and title")

	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "summary <contract-id>",
		Short:   "Show the funding, modification and deliverable roll-up",
		GroupID: "contracts",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			s, err := a.client().Summary(cmd.Context(), ids[0])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), wire.FromSummary(s))
			}

			pop := "N/A"
			if s.PopDaysRemaining != nil {
				pop = strconv.Itoa(*s.PopDaysRemaining) + " days"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s (%s)\n", s.ContractNumber, s.Title, s.Status.Label())
			fmt.Fprintf(w, "Total value\t%s\n", contract.FormatCurrency(&s.TotalValue))
			fmt.Fprintf(w, "Funded\t%s (%s)\n", contract.FormatCurrency(&s.FundedValue), contract.FormatPercent(s.FundingPercentage))
			fmt.Fprintf(w, "CLINs\t%d, invoiced %s (burn %s)\n", s.ClinCount, contract.FormatCurrency(&s.ClinInvoicedAmount), contract.FormatPercent(s.BurnRate))
			fmt.Fprintf(w, "Remaining funds\t%s\n", contract.FormatCurrency(&s.RemainingFunds))
			fmt.Fprintf(w, "Modifications\t%d, %d pending\n", s.ModificationCount, s.PendingModifications)
			fmt.Fprintf(w, "Deliverables\t%d, %d overdue, %d due soon\n", s.DeliverableCount, s.OverdueDeliverables, s.DueSoonDeliverables)
			fmt.Fprintf(w, "PoP remaining\t%s\n", pop)

			return w.Flush()
		},
	}
}

func newExecuteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "execute <contract-id> <modification-id>",
		Short:   "Execute an approved modification",
		GroupID: "contracts",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			mod, c, err := a.client().ExecuteModification(cmd.Context(), ids[0], ids[1])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), wire.ExecuteResult{
					Modification: wire.FromModification(mod),
					Contract:     wire.FromContract(c),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Executed %s. %s is now valued at %s with %s funded.\n",
				mod.ModificationNumber,
				c.ContractNumber,
				contract.FormatCurrency(&c.TotalValue),
				contract.FormatCurrency(&c.FundedValue),
			)

			return nil
		},
	}
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(args))

	for i, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", arg)
		}

		ids[i] = id
	}

	return ids, nil
}
