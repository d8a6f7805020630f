// Package shell implements the kernel's command loop: it reads a line,
// splits it into arguments in place and runs the matching built-in.
package shell

import (
	"io"

	"github.com/SeraphinaAstra/VibeOS/cstr"
	"github.com/SeraphinaAstra/VibeOS/format"
	"github.com/SeraphinaAstra/VibeOS/heap"
)

const (
	Prompt   = "vibe> "
	LineSize = 256
	MaxArgs  = 16
)

// Console is what the shell reads lines from and prints to.
type Console interface {
	io.Writer
	ReadLine(buf []byte) (int, error)
}

// Heap is the allocator whose statistics meminfo reports.
type Heap interface {
	Stats() heap.Stats
	Available() int
	Size() int
}

type Shell struct {
	con      Console
	heap     Heap
	commands []Command

	line [LineSize]byte
	argv [MaxArgs][]byte
	out  []byte
	err  error // first failed write
}

func New(con Console, h Heap) *Shell {
	s := &Shell{con: con, heap: h}
	s.commands = []Command{
		{"help", "Show this help message", (*Shell).help},
		{"echo", "Echo arguments back", (*Shell).echo},
		{"clear", "Clear the screen", (*Shell).clear},
		{"meminfo", "Show memory statistics", (*Shell).meminfo},
	}
	return s
}

// Fields splits the NUL-terminated line in place on runs of spaces and
// tabs, storing at most len(argv) arguments. The separator following each
// argument is overwritten with NUL; the arguments alias line. Arguments
// past len(argv) are dropped.
func Fields(line []byte, argv [][]byte) (argc int) {
	n := cstr.Len(line)
	p := 0
	for p < n && argc < len(argv) {
		for p < n && cstr.IsBlank(line[p]) {
			p++
		}
		if p == n {
			break
		}

		start := p
		for p < n && !cstr.IsBlank(line[p]) {
			p++
		}
		argv[argc] = line[start:p]
		argc++
		if p < n {
			line[p] = 0
			p++
		}
	}
	return argc
}

// Execute runs the command in line. line is modified.
func (s *Shell) Execute(line []byte) {
	argc := Fields(line, s.argv[:])
	if argc == 0 {
		return
	}
	argv := s.argv[:argc]
	for _, cmd := range s.commands {
		if string(argv[0]) == cmd.Name {
			cmd.Run(s, argv)
			return
		}
	}
	s.printf(`Unknown command: %s\n`, format.CStr(argv[0]))
	s.printf(`Type 'help' for available commands.\n`)
}

// Run prompts for and executes commands until the console fails, either
// because its input is closed or because output could not be written.
func (s *Shell) Run() error {
	for s.err == nil {
		s.write([]byte(Prompt))
		if s.err != nil {
			break
		}
		if _, err := s.con.ReadLine(s.line[:]); err != nil {
			return err
		}
		s.Execute(s.line[:])
	}
	return s.err
}

// Err returns the first output error seen by the shell.
func (s *Shell) Err() error {
	return s.err
}

// Banner clears the screen and greets the user.
func (s *Shell) Banner() {
	s.clear(nil)
	s.printf(`====================================\n`)
	s.printf(`  VibeOS - RISC-V Edition\n`)
	s.printf(`  "It Just Works(tm)"\n`)
	s.printf(`====================================\n\n`)
	s.printf(`Type 'help' for available commands.\n\n`)
}

func (s *Shell) printf(tmpl string, args ...format.Arg) {
	s.out, _ = format.Append(s.out[:0], tmpl, args...)
	s.write(s.out)
}

// write sends p to the console unless an earlier write failed.
func (s *Shell) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.con.Write(p)
}
