package dimacs

import (
	"fmt"
	"io"

	"github.com/namin/micado/mcf"
)

// WriteNetwork emits a DIMACS min-cost flow instance: a problem line, one
// arc line per arc in net (lower bound always 0 on output), then one node
// line per node with non-zero deficit. Network carries no open/closed
// state, so no arc is left out, including one whose cost is at or above
// mcf.CInf.
func WriteNetwork(w io.Writer, net *Network, nameBase mcf.NameBase) error {
	bw := bufferedWriter(w)
	if _, err := fmt.Fprintf(bw, "p min %d %d\n", net.N, len(net.U)); err != nil {
		return err
	}
	for k := range net.U {
		_, err := fmt.Fprintf(bw, "a %d %d 0 %d %d\n",
			net.Tail[k]+int(nameBase), net.Head[k]+int(nameBase), net.U[k], net.C[k])
		if err != nil {
			return err
		}
	}
	for v, d := range net.B {
		if d == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "n %d %d\n", v+int(nameBase), -d); err != nil {
			return err
		}
	}
	return bw.Flush()
}
