package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/duskwatch/ecs/component"
)

const stickDeadzone = 0.3

// Input samples keyboard, mouse and the first gamepad into held intents.
// Edge detection happens inside the simulation.
type Input struct {
	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Poll reads the current device state. The pointer is in world space.
func (i *Input) Poll() component.Intents {
	var in component.Intents

	in.Left = anyKey(ebiten.KeyA, ebiten.KeyLeft)
	in.Right = anyKey(ebiten.KeyD, ebiten.KeyRight)
	in.Sprint = anyKey(ebiten.KeyShiftLeft, ebiten.KeyShiftRight)
	in.Jump = anyKey(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp)
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeyJ)
	in.Click = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeyB)
	in.UpgradeWeapon = ebiten.IsKeyPressed(ebiten.KeyE)
	in.UpgradeRegen = ebiten.IsKeyPressed(ebiten.KeyC)
	in.QuickHeal = ebiten.IsKeyPressed(ebiten.KeyQ)
	in.Restart = ebiten.IsKeyPressed(ebiten.KeyR)

	mx, my := ebiten.CursorPosition()
	in.PointerX, in.PointerY = i.camera.ToWorld(mx, my)

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return in
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return in
	}

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	in.Left = in.Left || leftX < -stickDeadzone
	in.Right = in.Right || leftX > stickDeadzone
	in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	in.Sprint = in.Sprint || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomLeft)
	in.UpgradeWeapon = in.UpgradeWeapon || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightTop)
	in.QuickHeal = in.QuickHeal || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	in.Restart = in.Restart || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
	return in
}

// PausePressed reports the frame Escape or the gamepad start button went down.
func PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, gid := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
