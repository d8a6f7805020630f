package run

import (
	"strings"

	"github.com/SeraphinaAstra/VibeOS/shell"
)

// scripter answers each shell prompt in the emulator's output with the
// next script line.
type scripter struct {
	lines []string
	tail  []byte
}

// Observe consumes a chunk of console output. It returns the text to type
// if the chunk ended at a prompt, and done once a prompt arrives with no
// lines left.
func (s *scripter) Observe(p []byte) (reply string, done bool) {
	s.tail = append(s.tail, p...)
	if n := len(s.tail) - len(shell.Prompt); n > 0 {
		s.tail = s.tail[n:]
	}
	if !strings.HasSuffix(string(s.tail), shell.Prompt) {
		return "", false
	}
	s.tail = s.tail[:0]
	if len(s.lines) == 0 {
		return "", true
	}
	reply = s.lines[0] + "\r"
	s.lines = s.lines[1:]
	return reply, false
}
