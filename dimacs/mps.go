package dimacs

import (
	"fmt"
	"io"
)

// WriteMPS emits a modern, tab-separated MPS rendering of net: a single
// free objective row, one equality row per node, one variable per arc in
// net (Network carries no open/closed state, so none is left out) with ±1
// conservation entries and its cost as the objective coefficient, and an
// UP bound per variable's capacity.
func WriteMPS(w io.Writer, net *Network) error {
	return writeMPS(w, net, false)
}

// WriteFixedMPS emits the same instance in classic fixed-width (columns at
// offsets 2, 5, 15, 25, 40, per the historical MPS convention) MPS.
func WriteFixedMPS(w io.Writer, net *Network) error {
	return writeMPS(w, net, true)
}

func writeMPS(w io.Writer, net *Network, fixed bool) error {
	bw := bufferedWriter(w)

	fmt.Fprintln(bw, "NAME")
	fmt.Fprintln(bw, "ROWS")
	fmt.Fprintln(bw, " N  obj")
	for v := 0; v < net.N; v++ {
		fmt.Fprintf(bw, " E  R%d\n", v)
	}

	fmt.Fprintln(bw, "COLUMNS")
	for k := range net.U {
		col := fmt.Sprintf("x%d", k)
		if fixed {
			writeFixedEntry(bw, col, "obj", net.C[k])
			writeFixedEntry(bw, col, fmt.Sprintf("R%d", net.Tail[k]), 1)
			writeFixedEntry(bw, col, fmt.Sprintf("R%d", net.Head[k]), -1)
		} else {
			fmt.Fprintf(bw, "    %s\tobj\t%d\n", col, net.C[k])
			fmt.Fprintf(bw, "    %s\tR%d\t1\n", col, net.Tail[k])
			fmt.Fprintf(bw, "    %s\tR%d\t-1\n", col, net.Head[k])
		}
	}

	fmt.Fprintln(bw, "RHS")
	for v, d := range net.B {
		supply := -d
		if supply == 0 {
			continue
		}
		if fixed {
			writeFixedEntry(bw, "RHS", fmt.Sprintf("R%d", v), supply)
		} else {
			fmt.Fprintf(bw, "    RHS\tR%d\t%d\n", v, supply)
		}
	}

	fmt.Fprintln(bw, "BOUNDS")
	for k := range net.U {
		col := fmt.Sprintf("x%d", k)
		if fixed {
			fmt.Fprintf(bw, " UP BND       %-10s%15d\n", col, net.U[k])
		} else {
			fmt.Fprintf(bw, " UP\tBND\t%s\t%d\n", col, net.U[k])
		}
	}
	fmt.Fprintln(bw, "ENDATA")
	return bw.Flush()
}

func writeFixedEntry(bw io.Writer, col, row string, val int64) {
	fmt.Fprintf(bw, "    %-10s%-10s%15d\n", col, row, val)
}
