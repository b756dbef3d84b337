package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored results, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		list, err := st.ResultRepo().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin resultados guardados.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), historyTable(list))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "How many results to show (0 for all)")
}

func historyTable(list []store.StoredResult) string {
	rows := make([][]string, 0, len(list))
	for _, sr := range list {
		rec := sr.Record
		games := ""
		if rec.UsedGames() {
			games = "sí"
		}
		rows = append(rows, []string{rec.Timestamp, string(rec.Area), rec.Profession, joinTop(rec.Top3), games})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Fecha", "Área", "Profesión", "Top 3", "Juegos").
		Rows(rows...).
		String()
}

func joinTop(areas []catalog.Area) string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
