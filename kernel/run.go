// Package kernel ties the drivers together into the boot sequence and
// the shell loop.
package kernel

import (
	"io"

	"github.com/SeraphinaAstra/VibeOS/drivers/console"
	"github.com/SeraphinaAstra/VibeOS/heap"
	"github.com/SeraphinaAstra/VibeOS/shell"
)

// Run resets the heap, prints the banner and runs the shell on the console
// formed by src and out. On the target it never returns; a hosted build
// returns the error that ended input.
func Run(src console.Source, out io.Writer, mem *heap.Arena) error {
	mem.Reset()

	con := console.NewConsole(src, out)
	sh := shell.New(con, mem)
	sh.Banner()

	// Main loop
	return sh.Run()
}
