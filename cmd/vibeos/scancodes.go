//go:build !(noos && riscv64)

package main

import "github.com/SeraphinaAstra/VibeOS/drivers/keyboard"

// scancodeSource turns each host keystroke back into the PS/2 sequence a
// real keyboard would send and decodes it again, so the hosted shell reads
// through the same path as a keyboard-driven target.
type scancodeSource struct {
	term  *terminal
	kbd   keyboard.Keyboard
	codes []byte
}

func newScancodeSource(term *terminal) *scancodeSource {
	return &scancodeSource{term: term}
}

func (s *scancodeSource) TryGetChar() (byte, bool) {
	if c, ok := s.kbd.TryGetChar(); ok {
		return c, true
	}
	raw, ok := s.term.TryGetChar()
	if !ok {
		return 0, false
	}
	s.codes = keyboard.Encode(s.codes[:0], raw)
	s.kbd.HandleAll(s.codes)
	return s.kbd.TryGetChar()
}

func (s *scancodeSource) WaitChar() error {
	if s.kbd.Buffered() > 0 {
		return nil
	}
	return s.term.WaitChar()
}
