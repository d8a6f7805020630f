package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SeraphinaAstra/VibeOS/tools/run"
	"github.com/SeraphinaAstra/VibeOS/tools/scancodes"
)

const usageString = `vibego is a tool for development of VibeOS kernels.

Usage:

	%s <command> [arguments]

The commands are:

	run       boot a kernel image in an emulator, optionally scripted
	scancodes print the PS/2 scancodes that type a text
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "run":
		run.Main(flag.Args())
	case "scancodes":
		scancodes.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
