package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("reset needs --yes")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored results and favorites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errResetNotConfirmed
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.ResultRepo().Prune(ctx, 0); err != nil {
			return err
		}
		if err := st.FavoritesRepo().Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Datos borrados.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all stored data")
}
