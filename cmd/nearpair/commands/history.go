package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nearpair/store"
)

func newHistoryCmd(g *globalFlags) *cobra.Command {
	var (
		db    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == "" {
				cfg, err := resolveConfig(cmd, g)
				if err != nil {
					return err
				}
				db = cfg.HistoryDB
			}
			if db == "" {
				return errors.New("--db is required (or history_db in the config file)")
			}

			hist, err := store.Open(db)
			if err != nil {
				return err
			}
			defer hist.Close()

			runs, err := hist.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tINPUT\tPOINTS\tBUDGET\tMETHOD\tPRODUCT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%d\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Input, r.Points, r.Budget, r.Method, r.Product)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite history file")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 = all)")

	return cmd
}
