package cmd

import (
	"fmt"
	"io"

	"github.com/eykd/doccheck/internal/messages"
	"github.com/eykd/doccheck/internal/validator"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// statsDocument is the JSON/YAML output of the stats command.
type statsDocument struct {
	Path   string                 `json:"path" yaml:"path"`
	Total  int                    `json:"total" yaml:"total"`
	Styles []validator.StyleCount `json:"styles" yaml:"styles"`
	Error  *errorDocument         `json:"error,omitempty" yaml:"error,omitempty"`
}

// formatStatsHuman writes the style histogram as a table.
func formatStatsHuman(w io.Writer, s *session, st *validator.StyleStats) {
	s.colors.bold.Fprintln(w, s.loc.Sprintf(messages.StatsHeader, st.Path, messages.Count(st.Total)))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{s.loc.Sprintf(messages.ColumnStyle), s.loc.Sprintf(messages.ColumnCount)})
	for _, sc := range st.Styles {
		t.AppendRow(table.Row{sc.Style, fmt.Sprint(sc.Count)})
	}
	t.Render()
}

func newStatsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:          "stats",
		Short:        "Show how many paragraphs use each style",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.prepare(cmd); err != nil {
				return err
			}

			st, err := s.runner.Stats(cmd.Context(), s.cfg.Path)
			out := cmd.OutOrStdout()
			if err != nil {
				if s.structured() {
					s.encode(out, statsDocument{
						Path:   s.cfg.Path,
						Styles: []validator.StyleCount{},
						Error:  &errorDocument{Kind: errorKind(err), Message: s.loc.Error(err)},
					})
				}
				return s.fail(err)
			}

			if s.structured() {
				s.encode(out, statsDocument{Path: st.Path, Total: st.Total, Styles: st.Styles})
			} else {
				formatStatsHuman(out, s, st)
			}
			return nil
		},
	}
}
