// Command comparecli is a demo CLI driving the comparison engine over two
// files, for manual inspection. It has no editor to integrate with, so it
// renders results against an in-memory document and prints a colorized,
// line-numbered summary to the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sagpant/docdiff/align"
	"github.com/sagpant/docdiff/blocks"
	"github.com/sagpant/docdiff/comparer"
	"github.com/sagpant/docdiff/document"
)

var (
	ignoreCase       bool
	ignoreWhitespace bool
	detectMoves      bool
	oldSideFlag      string
	uniqueMode       bool
)

func main() {
	root := &cobra.Command{
		Use:           "comparecli <fileA> <fileB>",
		Short:         "Compare two text files and print a marked-up summary",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVar(&ignoreCase, "ignore-case", false, "fold ASCII case before comparing")
	root.Flags().BoolVar(&ignoreWhitespace, "ignore-whitespace", false, "elide spaces and tabs before comparing")
	root.Flags().BoolVar(&detectMoves, "detect-moves", false, "classify moved line ranges instead of delete+insert")
	root.Flags().StringVar(&oldSideFlag, "old-side", "a", "which file is the \"old\" side for ADDED/REMOVED polarity: a or b")
	root.Flags().BoolVar(&uniqueMode, "unique", false, "use Find-Unique Mode instead of the full aligned diff")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	oldSide := comparer.SideA
	switch oldSideFlag {
	case "a", "A":
		oldSide = comparer.SideA
	case "b", "B":
		oldSide = comparer.SideB
	default:
		return fmt.Errorf("invalid --old-side %q, want \"a\" or \"b\"", oldSideFlag)
	}

	contentA, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	contentB, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	docA := document.NewMemoryDocument(contentA)
	docB := document.NewMemoryDocument(contentB)
	settings := comparer.Settings{
		IgnoreCase:       ignoreCase,
		IgnoreWhitespace: ignoreWhitespace,
		DetectMoves:      detectMoves,
		OldSide:          oldSide,
	}

	result, report, err := comparer.Compare(
		docA, docB,
		blocks.Section{Offset: 0, Length: docA.LineCount()},
		blocks.Section{Offset: 0, Length: docB.LineCount()},
		uniqueMode, settings, document.NoopProgress{}, cmd.CommandPath(),
	)
	if err != nil {
		return err
	}

	printResult(result, report, docA, docB)
	if result == comparer.Mismatch {
		os.Exit(1)
	}
	return nil
}

func printResult(result comparer.Result, report comparer.Report, docA, docB *document.MemoryDocument) {
	switch result {
	case comparer.Match:
		fmt.Println(color.GreenString("MATCH"))
		return
	case comparer.Cancelled:
		fmt.Println(color.YellowString("CANCELLED"))
		return
	}

	fmt.Println(color.RedString("MISMATCH"))

	markerA := make(map[int]align.Marker, len(report.LineMarks))
	markerB := make(map[int]align.Marker, len(report.LineMarks))
	for _, m := range report.LineMarks {
		if m.Side == align.SideA {
			markerA[m.Line] |= m.Mask
		} else {
			markerB[m.Line] |= m.Mask
		}
	}

	for i := 0; i < docA.LineCount(); i++ {
		printLine('A', i, docA.Line(i), markerA[i])
	}
	for i := 0; i < docB.LineCount(); i++ {
		printLine('B', i, docB.Line(i), markerB[i])
	}
}

func printLine(side byte, line int, text []byte, mask align.Marker) {
	prefix := fmt.Sprintf("%c%4d ", side, line)
	switch {
	case mask&(align.Added|align.AddedLocal) != 0:
		fmt.Println(color.GreenString("%s+ %s", prefix, text))
	case mask&(align.Removed|align.RemovedLocal) != 0:
		fmt.Println(color.RedString("%s- %s", prefix, text))
	case mask&align.Changed != 0:
		fmt.Println(color.YellowString("%s~ %s", prefix, text))
	case mask&(align.MovedLine|align.MovedBegin|align.MovedMid|align.MovedEnd) != 0:
		fmt.Println(color.CyanString("%s^ %s", prefix, text))
	default:
		fmt.Printf("%s  %s\n", prefix, text)
	}
}
