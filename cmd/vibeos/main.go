//go:build !(noos && riscv64)

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SeraphinaAstra/VibeOS/drivers/console"
	"github.com/SeraphinaAstra/VibeOS/kernel"
	"github.com/SeraphinaAstra/VibeOS/machine"
)

const usageString = `vibeos runs the VibeOS shell on this terminal.

Usage: %s [flags]

Press Ctrl-] to quit.

`

var kbd = flag.Bool("kbd", false, "feed keystrokes through the PS/2 scancode decoder")

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	term, err := openTerminal()
	if err != nil {
		log.Fatalln("open terminal:", err)
	}
	defer term.Close()

	var src console.Source = term
	if *kbd {
		src = newScancodeSource(term)
	}

	err = kernel.Run(src, term, machine.Heap)
	if err != nil && !errors.Is(err, io.EOF) {
		term.Close()
		log.Fatalln(err)
	}
}
