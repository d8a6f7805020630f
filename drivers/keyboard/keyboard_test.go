package keyboard

import "testing"

func drain(k *Keyboard) string {
	var out []byte
	for {
		c, ok := k.TryGetChar()
		if !ok {
			return string(out)
		}
		out = append(out, c)
	}
}

func TestHandle(t *testing.T) {
	tests := map[string]struct {
		codes []byte
		want  string
	}{
		"letters":        {[]byte{0x23, 0xa3, 0x17, 0x97}, "hi"},
		"digitsSymbols":  {[]byte{0x02, 0x0c, 0x0d, 0x35}, "1-=/"},
		"shift":          {[]byte{ScanLeftShift, 0x23, ScanLeftShift | Release, 0x23}, "Hh"},
		"rightShift":     {[]byte{ScanRightShift, 0x02, 0x28, ScanRightShift | Release}, "!\""},
		"enterBackspace": {[]byte{0x1c, 0x0e}, "\r\b"},
		"unmapped":       {[]byte{0x3b, 0x3c, 0x2a | Release, 0x5f, 0x7f}, ""},
		"releaseIgnored": {[]byte{0x1e | Release, 0x30 | Release}, ""},
		"ctrlC":          {[]byte{ScanLeftCtrl, ScanScrollLock, ScanScrollLock | Release, ScanLeftCtrl | Release}, "\x03"},
		"ctrlD":          {[]byte{ScanLeftCtrl, ScanDelete}, "\x04"},
		"plainScroll":    {[]byte{ScanScrollLock, ScanDelete}, ""},
		"ctrlReleased":   {[]byte{ScanLeftCtrl, ScanLeftCtrl | Release, ScanScrollLock}, ""},
		"ctrlLetter":     {[]byte{ScanLeftCtrl, 0x2e}, "c"},
		"keypad":         {[]byte{0x37, 0x4a, 0x4e}, "*-+"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var k Keyboard
			k.HandleAll(tc.codes)
			if got := drain(&k); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	var k Keyboard
	k.Handle(ScanLeftAlt)
	k.Handle(ScanLeftCtrl)
	k.Handle(ScanRightShift)
	if !k.Alt() || !k.Ctrl() || !k.Shift() {
		t.Fatalf("expected all modifiers held, got alt=%v ctrl=%v shift=%v", k.Alt(), k.Ctrl(), k.Shift())
	}
	k.Handle(ScanLeftShift | Release)
	if k.Shift() {
		t.Fatal("either shift key releases shift")
	}
	k.Handle(ScanLeftAlt | Release)
	k.Handle(ScanLeftCtrl | Release)
	if k.Alt() || k.Ctrl() {
		t.Fatal("expected modifiers released")
	}
	if k.Buffered() != 0 {
		t.Fatalf("modifiers must not produce characters, got %d", k.Buffered())
	}
}

func TestRing(t *testing.T) {
	var r Ring
	for i := range RingSize {
		if !r.Put(byte(i)) {
			t.Fatalf("put %d rejected", i)
		}
		if r.Len() != i+1 {
			t.Fatalf("expected %v, got %v", i+1, r.Len())
		}
	}
	if !r.Full() || r.Put(0xff) {
		t.Fatal("expected full ring to drop")
	}
	if r.Len() != RingSize {
		t.Fatalf("expected %v, got %v", RingSize, r.Len())
	}
	for i := range RingSize {
		c, ok := r.Get()
		if !ok || c != byte(i) {
			t.Fatalf("expected %v, got %v (ok=%v)", byte(i), c, ok)
		}
	}
	if _, ok := r.Get(); ok || !r.Empty() {
		t.Fatal("expected empty ring")
	}
}

func TestRingWraps(t *testing.T) {
	var r Ring
	var want []byte
	for i := range 1000 {
		if r.Put(byte(i)) {
			want = append(want, byte(i))
		}
		if i%3 == 0 {
			c, ok := r.Get()
			if !ok || c != want[0] {
				t.Fatalf("expected %v, got %v", want[0], c)
			}
			want = want[1:]
		}
	}
	if r.Len() != len(want) {
		t.Fatalf("expected %v, got %v", len(want), r.Len())
	}
}

func TestKeyboardDropsWhenFull(t *testing.T) {
	var k Keyboard
	for range RingSize + 10 {
		k.Handle(0x1e)
	}
	if k.Buffered() != RingSize {
		t.Fatalf("expected %v, got %v", RingSize, k.Buffered())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var in []byte
	for c := byte(32); c < 127; c++ {
		in = append(in, c)
	}
	in = append(in, '\r', '\t', 8, 27, Interrupt, EndOfInput)

	var k Keyboard
	k.HandleAll(EncodeString(nil, string(in)))
	if got := drain(&k); got != string(in) {
		t.Fatalf("expected %q, got %q", in, got)
	}
	if k.Shift() || k.Ctrl() || k.Alt() {
		t.Fatal("encoded sequences must release their modifiers")
	}
}

func TestEncodeTranslates(t *testing.T) {
	var k Keyboard
	k.HandleAll(EncodeString(nil, "ok\n\x7f\x80\x01"))
	if got := drain(&k); got != "ok\r\b" {
		t.Fatalf("expected %q, got %q", "ok\r\b", got)
	}
}
