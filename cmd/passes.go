package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/guestlink/guestlink/internal/model"
	"github.com/guestlink/guestlink/internal/store"
)

var passesLimit int

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List stored passes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		passes, err := st.ListPasses(ctx, passesLimit)
		if err != nil {
			return eris.Wrap(err, "list passes")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(passes)
	},
}

// loadPass fetches a pass by ID, or the latest pass when id is empty.
func loadPass(ctx context.Context, st store.Store, id string) (*model.PassResult, error) {
	var pass *model.PassResult
	var err error
	if id == "" {
		pass, err = st.LatestPass(ctx)
	} else {
		pass, err = st.GetPass(ctx, id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "load pass")
	}
	if pass == nil {
		return nil, eris.New("no pass found; run a pass first")
	}
	return pass, nil
}

func init() {
	passesCmd.Flags().IntVar(&passesLimit, "limit", 20, "maximum passes to list")
	rootCmd.AddCommand(passesCmd)
}
