package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/SeraphinaAstra/VibeOS/drivers/console"
	"github.com/SeraphinaAstra/VibeOS/heap"
)

// input feeds a fixed byte string and then reports the source closed.
type input struct{ data []byte }

func (in *input) TryGetChar() (byte, bool) {
	if len(in.data) == 0 {
		return 0, false
	}
	c := in.data[0]
	in.data = in.data[1:]
	return c, true
}

func (in *input) WaitChar() error { return io.EOF }

func newTestShell(in string) (*Shell, *heap.Arena, *bytes.Buffer) {
	var out bytes.Buffer
	h := heap.New(make([]byte, 1<<20), 0x80500000)
	con := console.NewConsole(&input{data: []byte(in)}, &out)
	return New(con, h), h, &out
}

func TestFields(t *testing.T) {
	tests := map[string]struct {
		line string
		max  int
		want []string
	}{
		"padded":     {"  echo   hello   world  ", MaxArgs, []string{"echo", "hello", "world"}},
		"tabs":       {"echo\thello\t \tworld", MaxArgs, []string{"echo", "hello", "world"}},
		"empty":      {"", MaxArgs, nil},
		"blank":      {" \t  ", MaxArgs, nil},
		"single":     {"help", MaxArgs, []string{"help"}},
		"terminated": {"help me\x00 not this", MaxArgs, []string{"help", "me"}},
		"overflow":   {"a b c d e", 3, []string{"a", "b", "c"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			line := []byte(tc.line)
			argv := make([][]byte, tc.max)
			argc := Fields(line, argv)
			if argc != len(tc.want) {
				t.Fatalf("expected argc %v, got %v", len(tc.want), argc)
			}
			for i, want := range tc.want {
				if string(argv[i]) != want {
					t.Fatalf("expected argv[%d] %q, got %q", i, want, argv[i])
				}
			}
		})
	}
}

func TestFieldsInPlace(t *testing.T) {
	line := []byte("  echo   hello\x00")
	argv := make([][]byte, MaxArgs)
	Fields(line, argv)
	if string(line) != "  echo\x00  hello\x00" {
		t.Fatalf("expected separators replaced, got %q", line)
	}
	argv[1][0] = 'j'
	if string(line[9:14]) != "jello" {
		t.Fatal("arguments must alias the line buffer")
	}
}

func TestExecute(t *testing.T) {
	tests := map[string]struct {
		line string
		want string
	}{
		"echo":      {"echo hello   world", "hello world\n"},
		"echoEmpty": {"echo", "\n"},
		"clear":     {"clear", "\x1b[2J\x1b[H"},
		"empty":     {"   ", ""},
		"unknown":   {"foo bar", "Unknown command: foo\nType 'help' for available commands.\n"},
		"caseMatch": {"HELP", "Unknown command: HELP\nType 'help' for available commands.\n"},
		"help": {"help", "Available commands:\n" +
			"  help    - Show this help message\n" +
			"  echo    - Echo arguments back\n" +
			"  clear   - Clear the screen\n" +
			"  meminfo - Show memory statistics\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s, _, out := newTestShell("")
			s.Execute([]byte(tc.line + "\x00"))
			if out.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, out.String())
			}
		})
	}
}

func TestUnknownLeavesHeap(t *testing.T) {
	s, h, out := newTestShell("")
	before := h.Stats()
	s.Execute([]byte("foo\x00"))
	if !strings.Contains(out.String(), "foo") {
		t.Fatalf("expected output to name the command, got %q", out.String())
	}
	if h.Stats() != before {
		t.Fatalf("expected %+v, got %+v", before, h.Stats())
	}
}

func TestMeminfo(t *testing.T) {
	s, h, out := newTestShell("")
	if h.Alloc(64) == nil {
		t.Fatal("allocation failed")
	}
	s.Execute([]byte("meminfo\x00"))

	for _, want := range []string{
		"Memory Statistics:\n",
		"  Total Allocated: 40 bytes (0x40)\n",
		"  Total Freed:     0 bytes (0x0)\n",
		"  Current Usage:   40 bytes (0x40)\n",
		"  Peak Usage:      40 bytes (0x40)\n",
		"  Available:       fffc0 bytes\n",
		"  Total Heap:      100000 bytes\n",
		"  Allocations:     1\n",
		"  Frees:           0\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRun(t *testing.T) {
	s, _, out := newTestShell("echo one\rnope\r\necho two\n")
	err := s.Run()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected %v, got %v", io.EOF, err)
	}
	want := Prompt + "echo one\none\n" +
		Prompt + "nope\nUnknown command: nope\nType 'help' for available commands.\n" +
		Prompt + "\n" +
		Prompt + "echo two\ntwo\n" +
		Prompt
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestBanner(t *testing.T) {
	s, _, out := newTestShell("")
	s.Banner()
	if !strings.HasPrefix(out.String(), clearScreen) || !strings.Contains(out.String(), "VibeOS") {
		t.Fatalf("unexpected banner %q", out.String())
	}
}

// lineConsole hands out fixed lines and fails every write except the
// prompt once broken is set.
type lineConsole struct {
	lines  []string
	reads  int
	broken error
}

func (c *lineConsole) Write(p []byte) (int, error) {
	if c.broken != nil && string(p) != Prompt {
		return 0, c.broken
	}
	return len(p), nil
}

func (c *lineConsole) ReadLine(buf []byte) (int, error) {
	if len(c.lines) == 0 {
		return 0, io.EOF
	}
	c.reads++
	n := copy(buf[:len(buf)-1], c.lines[0])
	buf[n] = 0
	c.lines = c.lines[1:]
	return n, nil
}

func TestRunStopsOnWriteError(t *testing.T) {
	broken := errors.New("output gone")
	con := &lineConsole{lines: []string{"echo hi", "help"}, broken: broken}
	s := New(con, heap.New(make([]byte, 64), 0x80500000))

	if err := s.Run(); !errors.Is(err, broken) {
		t.Fatalf("expected %v, got %v", broken, err)
	}
	if con.reads != 1 {
		t.Fatalf("expected 1 line read, got %d", con.reads)
	}
	if !errors.Is(s.Err(), broken) {
		t.Fatalf("expected %v, got %v", broken, s.Err())
	}
}

func TestBannerWriteErrorStopsRun(t *testing.T) {
	broken := errors.New("output gone")
	con := &lineConsole{lines: []string{"help"}, broken: broken}
	s := New(con, heap.New(make([]byte, 64), 0x80500000))

	s.Banner()
	if err := s.Run(); !errors.Is(err, broken) {
		t.Fatalf("expected %v, got %v", broken, err)
	}
	if con.reads != 0 {
		t.Fatalf("expected no line read, got %d", con.reads)
	}
}
