// Command benchmark compares this module's line/word engine against
// github.com/sergi/go-diff on the same fixtures, reporting timing and block
// counts for each. It exists to validate output plausibility against an
// independent implementation, not to assert bit-for-bit equivalence (the
// two tools decompose changes differently).
package main

import (
	"fmt"
	"strings"
	"time"

	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sagpant/docdiff/blocks"
	"github.com/sagpant/docdiff/comparer"
	"github.com/sagpant/docdiff/document"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d elements, B: %d elements\n", len(tc.a), len(tc.b))

		docA := document.NewMemoryDocument([]byte(strings.Join(tc.a, "\n")))
		docB := document.NewMemoryDocument([]byte(strings.Join(tc.b, "\n")))

		start := time.Now()
		result, report, err := comparer.Compare(
			docA, docB,
			blocks.Section{Offset: 0, Length: docA.LineCount()},
			blocks.Section{Offset: 0, Length: docB.LineCount()},
			false, comparer.Settings{DetectMoves: true}, document.NoopProgress{}, tc.name,
		)
		engineTime := time.Since(start)
		if err != nil {
			fmt.Printf("docdiff: error: %v\n", err)
			continue
		}

		dmp := godiff.New()
		start = time.Now()
		aText := strings.Join(tc.a, "\n")
		bText := strings.Join(tc.b, "\n")
		goDiffs := dmp.DiffMain(aText, bText, true)
		goDiffTime := time.Since(start)

		engineStats := analyzeEngine(report)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\ndocdiff: %v (%s)\n", engineTime, result)
		fmt.Printf("  Alignment rows: %d, line marks: %d, change regions: %d\n",
			len(report.Rows), len(report.LineMarks), engineStats.changeRegions)

		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		fmt.Printf("  Change regions: %d\n", goDiffStats.changeRegions)
	}
}

type engineStats struct {
	changeRegions int
}

func analyzeEngine(report comparer.Report) engineStats {
	var s engineStats
	for _, r := range report.Rows {
		if r.AMask != 0 || r.BMask != 0 {
			s.changeRegions++
		}
	}
	return s
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
