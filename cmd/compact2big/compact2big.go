package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkt-cash/sidechaind/blockchain/difficulty"
	"github.com/pkt-cash/sidechaind/pktconfig/version"
)

func usage(w io.Writer) {
	fmt.Fprint(w, "Usage: compact2big <target>\n")
}

// convert prints the full target and the expected work of a compact target
// given in hex, such as 1d00ffff.
func convert(w io.Writer, arg string) bool {
	num, err := strconv.ParseUint(arg, 16, 32)
	if err != nil {
		fmt.Fprintf(w, "Expected hex number, got [%s]\n", arg)
		return false
	}
	bits := uint32(num)
	fmt.Fprintf(w, "target: %064x\n", difficulty.CompactToBig(bits))
	fmt.Fprintf(w, "work:   %s\n", difficulty.CalcWork(bits).Text(16))
	return true
}

func main() {
	version.SetUserAgentName("compact2big")
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}
	if !convert(os.Stdout, os.Args[1]) {
		os.Exit(1)
	}
}
