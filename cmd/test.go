package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/report"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Take the test without the full-screen UI",
	Long: `Answer the test from the command line. With --answers the run is
non-interactive; otherwise each question is asked on stdin.

Options are numbered from 1 in the prompts and from 0 in --answers.`,
	Example: `  orienta test --answers 0,2,1,0,1,2 --game "Tecnología=80" --json`,
	RunE:    runTestCmd,
}

func init() {
	testCmd.Flags().String("answers", "", "Comma-separated option indexes, one per question (0-based)")
	testCmd.Flags().StringArray("game", nil, `Minigame result as "area=score"; repeatable`)
	testCmd.Flags().Bool("json", false, "Print the record as JSON")
	testCmd.Flags().Bool("no-save", false, "Do not store the result")
	testCmd.Flags().String("export", "", "Also write the record to a timestamped JSON file in this directory")
}

// testOptions are the parsed flags of the test command.
type testOptions struct {
	Answers   []int
	Games     []session.GameResult
	JSON      bool
	ExportDir string
}

func runTestCmd(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	var opts testOptions
	rawAnswers, _ := cmd.Flags().GetString("answers")
	if rawAnswers != "" {
		if opts.Answers, err = parseAnswers(rawAnswers); err != nil {
			return err
		}
	}
	rawGames, _ := cmd.Flags().GetStringArray("game")
	if opts.Games, err = parseGames(rawGames); err != nil {
		return err
	}
	opts.JSON, _ = cmd.Flags().GetBool("json")
	opts.ExportDir, _ = cmd.Flags().GetString("export")
	noSave, _ := cmd.Flags().GetBool("no-save")

	var repo store.ResultRepo
	s := session.New(cat, session.WithLogger(log))
	if !noSave {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		env, err := newEnv(cmd.Context(), cat, st, log)
		if err != nil {
			return err
		}
		repo, s = env.Results, env.Session
	}

	out := cmd.OutOrStdout()
	if opts.Answers == nil {
		if opts.Answers, err = askAnswers(cat, cmd.InOrStdin(), out); err != nil {
			return err
		}
	}

	rec, err := runTest(s, opts)
	if err != nil {
		return err
	}

	if repo != nil {
		if _, err := repo.Save(context.Background(), rec); err != nil {
			fmt.Fprintln(os.Stderr, "Could not save result:", err)
		}
	}
	return printRecord(out, cat, rec, opts)
}

// runTest plays a whole test through s: games first, then the answers.
func runTest(s *session.Session, opts testOptions) (*result.Record, error) {
	for _, g := range opts.Games {
		if err := s.RecordGameResult(g); err != nil {
			return nil, fmt.Errorf("game %s: %w", g.Area, err)
		}
	}

	s.StartTest()
	if n := s.Catalog().NumQuestions(); len(opts.Answers) != n {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", session.ErrTestIncomplete, len(opts.Answers), n)
	}
	for i, a := range opts.Answers {
		if err := s.RecordAnswer(i, a); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return s.Finalize()
}

func printRecord(w io.Writer, cat *catalog.Catalog, rec *result.Record, opts testOptions) error {
	if opts.ExportDir != "" {
		path, err := report.ExportJSON(opts.ExportDir, rec, timeNow())
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported to", path)
	}
	if opts.JSON {
		return report.WriteJSON(w, rec)
	}
	_, err := fmt.Fprint(w, report.Render(rec, cat.Areas(), 60))
	return err
}

func parseAnswers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		answers = append(answers, n)
	}
	return answers, nil
}

func parseGames(raw []string) ([]session.GameResult, error) {
	var games []session.GameResult
	for _, g := range raw {
		area, score, ok := strings.Cut(g, "=")
		if !ok {
			return nil, fmt.Errorf("invalid game %q: want area=score", g)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(score), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid game score %q: %w", score, err)
		}
		games = append(games, session.GameResult{
			Area:  catalog.Area(strings.TrimSpace(area)),
			Score: v,
			Label: "cli",
		})
	}
	return games, nil
}

// askAnswers prompts for every question on in and returns 0-based choices.
func askAnswers(cat *catalog.Catalog, in io.Reader, out io.Writer) ([]int, error) {
	scanner := bufio.NewScanner(in)
	answers := make([]int, 0, cat.NumQuestions())

	for i, q := range cat.Questions() {
		fmt.Fprintf(out, "── Pregunta %d/%d ──\n%s\n", i+1, cat.NumQuestions(), q.Prompt)
		for j, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o.Label)
		}

		for {
			fmt.Fprint(out, "\nTu respuesta: ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				return nil, fmt.Errorf("%w: input closed at question %d", session.ErrTestIncomplete, i+1)
			}
			n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "Elige un número entre 1 y %d.\n", len(q.Options))
				continue
			}
			answers = append(answers, n-1)
			break
		}
		fmt.Fprintln(out)
	}
	return answers, nil
}
