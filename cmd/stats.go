package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each area won across stored results",
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

		list, err := st.ResultRepo().List(cmd.Context(), 0)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "Sin resultados guardados.")
			return nil
		}
		s := computeStats(cat, list)
		fmt.Fprintln(out, statsTable(cat, s))
		fmt.Fprintf(out, "%d resultados, %d con minijuegos.\n", s.Total, s.WithGames)
		return nil
	},
}

// areaStats aggregates stored results per area.
type areaStats struct {
	Total     int
	WithGames int
	Wins      map[catalog.Area]int
	InTop3    map[catalog.Area]int
	// BlendSum is the sum of blended scores, for the average column.
	BlendSum map[catalog.Area]float64
}

func computeStats(cat *catalog.Catalog, list []store.StoredResult) areaStats {
	s := areaStats{
		Wins:     make(map[catalog.Area]int),
		InTop3:   make(map[catalog.Area]int),
		BlendSum: make(map[catalog.Area]float64),
	}
	for _, sr := range list {
		rec := sr.Record
		s.Total++
		if rec.UsedGames() {
			s.WithGames++
		}
		s.Wins[rec.Area]++
		for _, a := range rec.Top3 {
			s.InTop3[a]++
		}
		for _, a := range cat.Areas() {
			s.BlendSum[a] += rec.Blended[a]
		}
	}
	return s
}

func statsTable(cat *catalog.Catalog, s areaStats) string {
	var rows [][]string
	for _, a := range cat.Areas() {
		avg := 0.0
		if s.Total > 0 {
			avg = s.BlendSum[a] / float64(s.Total)
		}
		rows = append(rows, []string{
			string(a),
			strconv.Itoa(s.Wins[a]),
			strconv.Itoa(s.InTop3[a]),
			fmt.Sprintf("%.0f%%", avg*100),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Área", "Ganó", "En top 3", "Promedio").
		Rows(rows...).
		String()
}
