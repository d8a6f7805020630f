// Package run boots a kernel image in an emulator attached to a pseudo
// terminal and optionally types a script into its shell.
package run

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

const usageString = `Boot a VibeOS kernel image.

Usage: %s [flags] <kernel>

Without -script the terminal is connected to the emulator's console.
With -script every line of the file is typed at a shell prompt and the
emulator is stopped at the first prompt after the last line.

`

const defaultEmulator = "qemu-system-riscv64 -machine virt -nographic -bios default -kernel"

var (
	flags = flag.NewFlagSet("run", flag.ExitOnError)

	emulator = flags.String("emu", defaultEmulator, "emulator command line, the kernel path is appended")
	script   = flags.String("script", "", "file with shell commands to type")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "run")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	argv, err := emulatorCommand(*emulator, flags.Arg(0))
	if err != nil {
		log.Fatalln("emu:", err)
	}

	s, err := newScripter(*script)
	if err != nil {
		log.Fatalln("script:", err)
	}

	os.Exit(boot(argv, s))
}

func emulatorCommand(cmdline, kernel string) ([]string, error) {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return append(args, kernel), nil
}

func readScript(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// newScripter returns nil when name is empty. A script without commands
// still stops the emulator at the first prompt.
func newScripter(name string) (*scripter, error) {
	if name == "" {
		return nil, nil
	}
	lines, err := readScript(name)
	if err != nil {
		return nil, err
	}
	return &scripter{lines: lines}, nil
}

func boot(argv []string, s *scripter) int {
	ptmx, err := pty.New()
	if err != nil {
		log.Fatalln("open pty:", err)
	}
	defer ptmx.Close()

	cmd := ptmx.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		log.Fatalln("start command:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	go func() {
		<-sigintr
		cmd.Process.Kill()
	}()

	scripted := s != nil
	if !scripted {
		go io.Copy(ptmx, os.Stdin)
	}

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			os.Stdout.Write(buf[:n])
			if scripted {
				reply, done := s.Observe(buf[:n])
				if done {
					log.Println("\nscript done")
					cmd.Process.Kill()
					break
				}
				if reply != "" {
					io.WriteString(ptmx, reply)
				}
			}
		}
		if err != nil {
			break
		}
	}

	if err := cmd.Wait(); err != nil && !scripted {
		log.Println(err)
		return 1
	}
	return 0
}
