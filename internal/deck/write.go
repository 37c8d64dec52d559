package deck

import (
	"bufio"
	"fmt"
	"io"
)

// EndData terminates the bulk data section.
const EndData = "ENDDATA"

// Write serializes the document. A document without executive or case
// control content is written as bulk data only. enddata appends ENDDATA.
func (d *Document) Write(w io.Writer, enddata bool) error {
	bw := bufio.NewWriter(w)

	if d.hasControl() {
		if d.Sol != 0 {
			fmt.Fprintf(bw, "SOL %d\n", d.Sol)
		}
		for _, l := range d.Executive {
			fmt.Fprintln(bw, l)
		}
		fmt.Fprintln(bw, "CEND")
		if cc := d.caseControl; cc != nil {
			for _, l := range cc.Global {
				fmt.Fprintln(bw, l)
			}
			for _, s := range cc.subcases {
				fmt.Fprintf(bw, "SUBCASE %d\n", s.ID)
				for _, l := range s.Lines {
					fmt.Fprintf(bw, "  %s\n", l)
				}
			}
		}
		fmt.Fprintln(bw, "BEGIN BULK")
	}

	for _, t := range d.types {
		for _, r := range d.records[t] {
			for _, l := range r.Lines() {
				fmt.Fprintln(bw, l)
			}
		}
	}

	if enddata {
		fmt.Fprintln(bw, EndData)
	}
	return bw.Flush()
}

func (d *Document) hasControl() bool {
	return d.Sol != 0 || len(d.Executive) > 0 || d.caseControl != nil
}
