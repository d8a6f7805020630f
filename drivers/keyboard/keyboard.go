// Package keyboard decodes PS/2 scancode set 1 into ASCII bytes.
//
// The decoder tracks the Shift, Ctrl and Alt modifiers across press and
// release events and queues the characters it produces in a Ring. Without
// interrupt wiring, Handle is called synchronously by whoever receives the
// scancodes. A Keyboard is not safe for concurrent use.
package keyboard

// Keyboard is the decoder state: the modifier flags and the queue of
// decoded characters.
type Keyboard struct {
	shift, ctrl, alt bool
	queue            Ring
}

// Handle processes one scancode.
func (k *Keyboard) Handle(scancode byte) {
	code := scancode &^ Release
	if scancode&Release != 0 {
		switch code {
		case ScanLeftShift, ScanRightShift:
			k.shift = false
		case ScanLeftCtrl:
			k.ctrl = false
		case ScanLeftAlt:
			k.alt = false
		}
		return
	}

	switch code {
	case ScanLeftShift, ScanRightShift:
		k.shift = true
	case ScanLeftCtrl:
		k.ctrl = true
	case ScanLeftAlt:
		k.alt = true
	case ScanScrollLock:
		if k.ctrl {
			k.queue.Put(Interrupt)
		}
	case ScanDelete:
		if k.ctrl {
			k.queue.Put(EndOfInput)
		}
	default:
		if c := k.lookup(code); c != 0 {
			k.queue.Put(c)
		}
	}
}

// HandleAll processes a sequence of scancodes.
func (k *Keyboard) HandleAll(codes []byte) {
	for _, c := range codes {
		k.Handle(c)
	}
}

func (k *Keyboard) lookup(code byte) byte {
	if k.shift {
		return shifted[code]
	}
	return unshifted[code]
}

// TryGetChar pops the next decoded character.
func (k *Keyboard) TryGetChar() (byte, bool) {
	return k.queue.Get()
}

// Buffered returns the number of decoded characters waiting.
func (k *Keyboard) Buffered() int { return k.queue.Len() }

func (k *Keyboard) Shift() bool { return k.shift }
func (k *Keyboard) Ctrl() bool  { return k.ctrl }
func (k *Keyboard) Alt() bool   { return k.alt }
