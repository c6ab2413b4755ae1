package ui

import (
	"fmt"
	"time"
)

// Animation frames, each redrawn in place with a carriage return.
const (
	FrameA = "\r🎉 POP! 💥"
	FrameB = "\r💥 POP! 🎉"
)

// The animation is always the same length.
const (
	// FramePairs is the number of FrameA/FrameB pairs
	FramePairs = 4

	// FrameDelay is how long each frame stays on screen
	FrameDelay = 300 * time.Millisecond
)

// Celebrate plays the party popper animation and prints the getting-started
// message for the project in directory slug.
func (p *Printer) Celebrate(slug string) {
	for i := 0; i < FramePairs; i++ {
		fmt.Fprint(p.w, FrameA)
		p.sleep(FrameDelay)
		fmt.Fprint(p.w, FrameB)
		p.sleep(FrameDelay)
	}

	fmt.Fprintf(p.w, "\r🎊 Congrats! Your %s project is ready! 🎉\n", slug)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "To get started, run:")
	fmt.Fprintf(p.w, "cd %s\n", slug)
	fmt.Fprintln(p.w, "tilt up")
	fmt.Fprintln(p.w)
}
