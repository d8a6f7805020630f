// Package scancodes prints the PS/2 scancode set 1 sequence that types a
// given text on a US keyboard, for feeding the kernel's keyboard decoder.
package scancodes

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SeraphinaAstra/VibeOS/drivers/keyboard"
	"github.com/SeraphinaAstra/VibeOS/format"
)

const usageString = `Print the scancodes that type a text.

Usage: %s [flags] <text>...

Arguments are joined with spaces. Escapes \n, \r and \t are understood,
as are ^C and ^D for the interrupt and end-of-input chords.

`

var (
	flags = flag.NewFlagSet("scancodes", flag.ExitOnError)

	newline = flags.Bool("n", false, "finish with Enter")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "scancodes")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(1)
	}

	text := strings.Join(flags.Args(), " ")
	if *newline {
		text += `\n`
	}

	w := bufio.NewWriter(os.Stdout)
	if err := write(w, text); err != nil {
		log.Fatalln(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}

// expand resolves the template escapes and caret notation in text.
func expand(text string) (string, error) {
	text = strings.NewReplacer("^C", "\x03", "^D", "\x04").Replace(text)
	out, err := format.Append(nil, strings.ReplaceAll(text, "%", "%%"))
	return string(out), err
}

func write(w *bufio.Writer, text string) error {
	s, err := expand(text)
	if err != nil {
		return err
	}
	codes := keyboard.EncodeString(nil, s)
	for i, c := range codes {
		tmpl := "%x "
		if c < 0x10 {
			tmpl = "0%x "
		}
		if i == len(codes)-1 {
			tmpl = tmpl[:len(tmpl)-1] + `\n`
		}
		if _, err := format.Fprint(w, tmpl, format.Int(c)); err != nil {
			return err
		}
	}
	return nil
}
