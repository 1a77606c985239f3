package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/intervalmap/pkg/intervalmap"
)

const (
	applyCmdUse      = "apply <script.yaml>"
	applyCmdShort    = "Replay a script against a fresh interval map"
	applyArgCount    = 1
	applyQuietFlag   = "quiet"
	applyQuietUsage  = "suppress per-operation output"
	applyNoColorFlag = "no-color"
	applyColorUsage  = "disable colored output"
	openRunMarker    = "∞"
)

// NewApplyCommand creates the apply subcommand.
func NewApplyCommand() *cobra.Command {
	var (
		quiet   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   applyCmdUse,
		Short: applyCmdShort,
		Args:  cobra.ExactArgs(applyArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runApply(args[0], quiet, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&quiet, applyQuietFlag, "q", false, applyQuietUsage)
	cmd.Flags().BoolVar(&noColor, applyNoColorFlag, false, applyColorUsage)

	return cmd
}

// replayStats counts the outcomes of a script replay.
type replayStats struct {
	assigned int64
	rejected int64
	lookups  int64
}

func runApply(scriptPath string, quiet bool, out io.Writer) error {
	script, err := LoadScript(scriptPath)
	if err != nil {
		return err
	}

	m := intervalmap.New[int64, string](script.Default)
	stats := replayStats{}

	for _, op := range script.Ops {
		replayOp(m, op, quiet, out, &stats)
	}

	fmt.Fprint(out, renderRuns(m))
	fmt.Fprintf(out, "%s assignments applied, %s rejected, %s lookups, %s breakpoints stored\n",
		humanize.Comma(stats.assigned), humanize.Comma(stats.rejected),
		humanize.Comma(stats.lookups), humanize.Comma(int64(m.Len())))

	return nil
}

func replayOp(m *intervalmap.Map[int64, string], op Op, quiet bool, out io.Writer, stats *replayStats) {
	if op.Get != nil {
		stats.lookups++

		if !quiet {
			fmt.Fprintf(out, "get %d = %q\n", *op.Get, m.Get(*op.Get))
		}

		return
	}

	assign := op.Assign
	if m.Assign(assign.Begin, assign.End, assign.Value) {
		stats.assigned++

		if !quiet {
			okMark := color.New(color.FgGreen).Sprint("ok")
			fmt.Fprintf(out, "assign [%d, %d) = %q: %s\n", assign.Begin, assign.End, assign.Value, okMark)
		}

		return
	}

	stats.rejected++

	if !quiet {
		rejectedMark := color.New(color.FgRed).Sprint("rejected")
		fmt.Fprintf(out, "assign [%d, %d) = %q: %s\n", assign.Begin, assign.End, assign.Value, rejectedMark)
	}
}

// renderRuns formats the stored breakpoints as a run table: each breakpoint
// starts a run which lasts until the next stored key, the last one being
// open-ended.
func renderRuns(m *intervalmap.Map[int64, string]) string {
	type run struct {
		start int64
		value string
	}

	var runs []run

	m.ForEach(func(key int64, value string) {
		runs = append(runs, run{start: key, value: value})
	})

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"START", "END", "VALUE"})

	for idx, r := range runs {
		end := openRunMarker
		if idx+1 < len(runs) {
			end = fmt.Sprintf("%d", runs[idx+1].start)
		}

		tbl.AppendRow(table.Row{r.start, end, r.value})
	}

	tbl.AppendFooter(table.Row{"", "default", m.DefaultValue()})

	return tbl.Render() + "\n"
}
