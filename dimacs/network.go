// Package dimacs reads and writes the DIMACS min-cost-flow text format (and
// writes MPS) for the mcf package's dense LoadNet arrays. The format is a
// narrow, line-oriented interface rather than a general tabular one, so
// this package is built directly on bufio/fmt rather than a third-party
// parsing or encoding library.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/namin/micado/mcf"
	"github.com/namin/micado/mcferr"
)

// Network holds a parsed (or about-to-be-written) min-cost flow instance in
// exactly the shape mcf.Solver.LoadNet expects: 0-based node ids, arc
// capacities already net of any DIMACS lower bound, and deficits already
// shifted to account for those lower bounds.
type Network struct {
	N    int
	M    int
	U    []mcf.Flow
	C    []mcf.Cost
	B    []mcf.Flow
	Tail []int
	Head []int
}

// ReadNetwork parses a DIMACS min-cost flow instance. Node and arc lines
// may be interleaved freely, unlike the strict DIMACS convention. nameBase
// selects whether ids in the text are 0-based or 1-based.
func ReadNetwork(r io.Reader, nameBase mcf.NameBase) (*Network, error) {
	net := &Network{}
	sawProblemLine := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if err := net.parseProblemLine(fields, lineNo); err != nil {
				return nil, err
			}
			sawProblemLine = true
		case "n":
			if !sawProblemLine {
				return nil, lineErr(lineNo, "node line before problem line")
			}
			if err := net.parseNodeLine(fields, nameBase, lineNo); err != nil {
				return nil, err
			}
		case "a":
			if !sawProblemLine {
				return nil, lineErr(lineNo, "arc line before problem line")
			}
			if err := net.parseArcLine(fields, nameBase, lineNo); err != nil {
				return nil, err
			}
		default:
			return nil, lineErr(lineNo, fmt.Sprintf("unrecognized line type %q", fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, mcferr.Wrap(err, mcferr.CodeInvalidInput, "reading DIMACS input")
	}
	if !sawProblemLine {
		return nil, lineErr(lineNo, "missing problem line")
	}
	return net, nil
}

func (net *Network) parseProblemLine(fields []string, lineNo int) error {
	if len(fields) != 4 || fields[1] != "min" {
		return lineErr(lineNo, "expected \"p min N M\"")
	}
	n, err1 := strconv.Atoi(fields[2])
	m, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || n < 0 || m < 0 {
		return lineErr(lineNo, "invalid node/arc counts")
	}
	net.N = n
	net.M = m
	net.U = make([]mcf.Flow, 0, m)
	net.C = make([]mcf.Cost, 0, m)
	net.Tail = make([]int, 0, m)
	net.Head = make([]int, 0, m)
	net.B = make([]mcf.Flow, n)
	return nil
}

func (net *Network) parseNodeLine(fields []string, nameBase mcf.NameBase, lineNo int) error {
	if len(fields) != 3 {
		return lineErr(lineNo, "expected \"n id d\"")
	}
	id, err1 := strconv.Atoi(fields[1])
	d, err2 := strconv.ParseInt(fields[2], 10, 64)
	if err1 != nil || err2 != nil {
		return lineErr(lineNo, "invalid node id/deficit")
	}
	idx := id - int(nameBase)
	if idx < 0 || idx >= net.N {
		return lineErr(lineNo, fmt.Sprintf("node id %d out of range", id))
	}
	net.B[idx] -= mcf.Flow(d)
	return nil
}

func (net *Network) parseArcLine(fields []string, nameBase mcf.NameBase, lineNo int) error {
	if len(fields) != 6 {
		return lineErr(lineNo, "expected \"a u v lo hi cost\"")
	}
	u, err1 := strconv.Atoi(fields[1])
	v, err2 := strconv.Atoi(fields[2])
	lo, err3 := strconv.ParseInt(fields[3], 10, 64)
	hi, err4 := strconv.ParseInt(fields[4], 10, 64)
	cost, err5 := strconv.ParseInt(fields[5], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return lineErr(lineNo, "invalid arc fields")
	}
	if lo > hi {
		return lineErr(lineNo, "arc lower bound exceeds upper bound")
	}
	tail, head := u-int(nameBase), v-int(nameBase)
	if tail < 0 || tail >= net.N || head < 0 || head >= net.N {
		return lineErr(lineNo, "arc endpoint out of range")
	}
	if tail == head {
		return lineErr(lineNo, "self-loop arc")
	}
	net.U = append(net.U, mcf.Flow(hi-lo))
	net.C = append(net.C, mcf.Cost(cost))
	net.Tail = append(net.Tail, tail)
	net.Head = append(net.Head, head)
	net.B[tail] += mcf.Flow(lo)
	net.B[head] -= mcf.Flow(lo)
	net.M = len(net.U)
	return nil
}

func lineErr(lineNo int, msg string) error {
	return mcferr.NewWithField(mcferr.CodeInvalidInput, fmt.Sprintf("line %d: %s", lineNo, msg), "line")
}
