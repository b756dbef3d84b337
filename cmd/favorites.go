package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/store"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite professions",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite professions",
	Args:  cobra.NoArgs,
	RunE: withFavorites(func(cmd *cobra.Command, f *favoritesState, _ []string) error {
		return f.list(cmd.OutOrStdout())
	}),
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <profession>...",
	Short: "Add professions to the favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: withFavorites(func(cmd *cobra.Command, f *favoritesState, args []string) error {
		return f.add(cmd, args)
	}),
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <profession>...",
	Aliases: []string{"rm"},
	Short:   "Remove professions from the favorites",
	Args:    cobra.MinimumNArgs(1),
	RunE: withFavorites(func(cmd *cobra.Command, f *favoritesState, args []string) error {
		return f.remove(cmd, args)
	}),
}

var favoritesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved favorites and go back to the defaults",
	Args:  cobra.NoArgs,
	RunE: withFavorites(func(cmd *cobra.Command, f *favoritesState, _ []string) error {
		if err := f.repo.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Favoritas restablecidas.")
		return nil
	}),
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesResetCmd)
}

// favoritesState is the current list and where it is stored.
type favoritesState struct {
	cat   *catalog.Catalog
	repo  store.FavoritesRepo
	names []string
	saved bool
}

func withFavorites(fn func(*cobra.Command, *favoritesState, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		f, err := loadFavorites(cmd, cat, st.FavoritesRepo())
		if err != nil {
			return err
		}
		return fn(cmd, f, args)
	}
}

func loadFavorites(cmd *cobra.Command, cat *catalog.Catalog, repo store.FavoritesRepo) (*favoritesState, error) {
	names, saved, err := repo.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	f := &favoritesState{cat: cat, repo: repo, saved: saved}
	if saved {
		f.names = cat.FilterProfessions(names)
	} else {
		f.names = cat.SeedFavorites()
	}
	return f, nil
}

func (f *favoritesState) list(w io.Writer) error {
	if len(f.names) == 0 {
		fmt.Fprintln(w, "No tienes favoritas.")
		return nil
	}
	for _, n := range f.names {
		area, _ := f.cat.AreaOf(n)
		fmt.Fprintf(w, "★ %-32s %s\n", n, area)
	}
	if !f.saved {
		fmt.Fprintln(w, "\n(lista por defecto)")
	}
	return nil
}

func (f *favoritesState) add(cmd *cobra.Command, names []string) error {
	for _, n := range names {
		if _, err := f.cat.AreaOf(n); err != nil {
			return err
		}
		if !contains(f.names, n) {
			f.names = append(f.names, n)
		}
	}
	return f.save(cmd)
}

func (f *favoritesState) remove(cmd *cobra.Command, names []string) error {
	kept := f.names[:0:0]
	for _, n := range f.names {
		if !contains(names, n) {
			kept = append(kept, n)
		}
	}
	f.names = kept
	return f.save(cmd)
}

func (f *favoritesState) save(cmd *cobra.Command) error {
	if err := f.repo.Save(cmd.Context(), f.names); err != nil {
		return err
	}
	f.saved = true
	return f.list(cmd.OutOrStdout())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
