package shell

import (
	"github.com/SeraphinaAstra/VibeOS/format"
)

// Command is a built-in. argv[0] is the command name.
type Command struct {
	Name string
	Help string
	Run  func(s *Shell, argv [][]byte)
}

const clearScreen = "\x1b[2J\x1b[H"

func (s *Shell) help(argv [][]byte) {
	const pad = "        "
	s.printf(`Available commands:\n`)
	for _, cmd := range s.commands {
		fill := ""
		if len(cmd.Name) < len(pad) {
			fill = pad[len(cmd.Name):]
		}
		s.printf(`  %s%s- %s\n`, format.Str(cmd.Name), format.Str(fill), format.Str(cmd.Help))
	}
}

func (s *Shell) echo(argv [][]byte) {
	for i, arg := range argv[1:] {
		if i > 0 {
			s.write([]byte{' '})
		}
		s.write(arg)
	}
	s.write([]byte{'\n'})
}

func (s *Shell) clear(argv [][]byte) {
	s.write([]byte(clearScreen))
}

func (s *Shell) meminfo(argv [][]byte) {
	st := s.heap.Stats()
	s.printf(`Memory Statistics:\n`)
	s.printf(`  Total Allocated: %x bytes (0x%x)\n`, format.Int(st.TotalAllocated), format.Int(st.TotalAllocated))
	s.printf(`  Total Freed:     %x bytes (0x%x)\n`, format.Int(st.TotalFreed), format.Int(st.TotalFreed))
	s.printf(`  Current Usage:   %x bytes (0x%x)\n`, format.Int(st.CurrentUsage), format.Int(st.CurrentUsage))
	s.printf(`  Peak Usage:      %x bytes (0x%x)\n`, format.Int(st.PeakUsage), format.Int(st.PeakUsage))
	s.printf(`  Available:       %x bytes\n`, format.Int(s.heap.Available()))
	s.printf(`  Total Heap:      %x bytes\n`, format.Int(s.heap.Size()))
	s.printf(`  Allocations:     %x\n`, format.Int(st.Allocations))
	s.printf(`  Frees:           %x\n`, format.Int(st.Frees))
}
