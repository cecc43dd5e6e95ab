package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/forestrie/go-clumpfind/scan"
)

// renderReport writes one line per record followed by the run wide union:
//
//	# run <id> <file> k=9 L=500 t=3 bounds=inclusive
//	<id>\t<length>\t<windows>\t<clumps>\t<pattern> <pattern> ...
//	<id>\t<length>\tskipped\t<reason>
//	# clumps <n>: <pattern> <pattern> ...
func renderReport(w io.Writer, file string, r *scan.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# run %s %s k=%d L=%d t=%d bounds=%s\n", r.RunID, file, r.K, r.L, r.T, r.Bounds)
	for _, rec := range r.Records {
		if rec.Skipped {
			fmt.Fprintf(&b, "%s\t%d\tskipped\t%s\n", rec.ID, rec.Length, rec.Reason)
			continue
		}
		fmt.Fprintf(&b, "%s\t%d\t%d\t%d\t%s\n",
			rec.ID, rec.Length, rec.Windows, rec.Distinct, strings.Join(rec.Patterns, " "))
	}
	fmt.Fprintf(&b, "# clumps %d: %s\n", len(r.Clumps), strings.Join(r.Clumps, " "))

	_, err := io.WriteString(w, b.String())
	return err
}
