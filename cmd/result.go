package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show the last stored result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.ResultRepo().Latest(cmd.Context())
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Aún no tienes resultados. Haz el test primero.")
			return nil
		}

		var opts testOptions
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.ExportDir, _ = cmd.Flags().GetString("export")
		return printRecord(cmd.OutOrStdout(), cat, rec, opts)
	},
}

func init() {
	resultCmd.Flags().Bool("json", false, "Print the record as JSON")
	resultCmd.Flags().String("export", "", "Also write the record to a timestamped JSON file in this directory")
}
