package components

import "github.com/yohamta/donburi"

// InputData stores the current and previous frame's control state.
type InputData struct {
	Left, Right, Jump bool
	PrevJump          bool
}

// JumpReleased reports a held-to-released edge this frame.
func (i InputData) JumpReleased() bool {
	return i.PrevJump && !i.Jump
}

var Input = donburi.NewComponentType[InputData]()
