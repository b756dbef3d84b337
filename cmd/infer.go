package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/screens/interests"
	"github.com/abhisek/orienta/internal/scoring"
)

var inferCmd = &cobra.Command{
	Use:   "infer <text...>",
	Short: "Suggest an area and profession from free text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		favs := cat.SeedFavorites()
		if st, err := openStore(cmd); err == nil {
			defer st.Close()
			if saved, ok, err := st.FavoritesRepo().Load(cmd.Context()); err == nil && ok {
				favs = cat.FilterProfessions(saved)
			}
		}

		sug, ok := scoring.Suggest(cat, strings.Join(args, " "), favs)
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Matched    bool     `json:"matched"`
				Area       string   `json:"area,omitempty"`
				Profession string   `json:"profession,omitempty"`
				Keywords   []string `json:"keywords"`
			}{ok, areaIf(ok, string(sug.Area)), sug.Profession, nonNil(sug.Keywords)})
		}

		if !ok {
			fmt.Fprintln(out, interests.Fallback)
			return nil
		}
		fmt.Fprintf(out, "Área: %s\nProfesión sugerida: %s\nPalabras clave: %s\n",
			sug.Area, sug.Profession, strings.Join(sug.Keywords, ", "))
		return nil
	},
}

func init() {
	inferCmd.Flags().Bool("json", false, "Print the suggestion as JSON")
}

func areaIf(ok bool, area string) string {
	if !ok {
		return ""
	}
	return area
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
