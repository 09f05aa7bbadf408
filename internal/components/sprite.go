package components

// Sprite is a reference to shared, read-only draw data (an actor image
// package entry looked up by internal/resources) plus the per-entity
// presentation state layered on top of it: which frames are currently
// active and the flash/translucency flags the renderer blends in
// (spec §3 "Sprite").
type Sprite struct {
	ActorID       string
	ActiveFrames  []int
	FlashWhite    bool
	Translucent   bool
	DrawTopMost   bool
	// Hidden skips this sprite's draw entirely for one frame, the mercy-
	// frame strobe's invisible half (spec §4.4, glossary "mercy frames").
	Hidden bool
}

// AnimationLoop cycles between two frame indices at a fixed tick period
// (spec §3 "AnimationLoop").
type AnimationLoop struct {
	FrameA, FrameB int
	PeriodTicks    int
	ticksLeft      int
	onB            bool
}

// Advance steps the loop by one tick and returns the frame index that
// should currently be displayed.
func (a *AnimationLoop) Advance() int {
	if a.ticksLeft <= 0 {
		a.onB = !a.onB
		a.ticksLeft = a.PeriodTicks
	}
	if a.ticksLeft > 0 {
		a.ticksLeft--
	}
	if a.onB {
		return a.FrameB
	}
	return a.FrameA
}

// AnimationSequence plays a one-shot or repeating list of frame indices
// (spec §3 "AnimationSequence").
type AnimationSequence struct {
	Frames   []int
	Repeat   bool
	index    int
	Finished bool
}

// Advance steps the sequence by one tick and returns the frame index that
// should currently be displayed. Once a non-repeating sequence reaches its
// last frame, Finished is set and Advance keeps returning that frame.
func (a *AnimationSequence) Advance() int {
	if len(a.Frames) == 0 {
		return 0
	}
	frame := a.Frames[a.index]
	if a.index < len(a.Frames)-1 {
		a.index++
	} else if a.Repeat {
		a.index = 0
	} else {
		a.Finished = true
	}
	return frame
}

// Reset restarts the sequence from its first frame.
func (a *AnimationSequence) Reset() {
	a.index = 0
	a.Finished = false
}
