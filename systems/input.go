package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and hands it to every player's controller.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollInput(input)
	applyInput(ecs, input)
}

func pollInput(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.Axis = digitalAxis(input)
	if analog := analogAxis(gamepadIDs); analog != 0 {
		input.Axis = analog
	}
}

// applyInput routes the polled state to the world. Split from polling so it
// runs without a window.
func applyInput(ecs *ecs.ECS, input *components.InputData) {
	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	var respawn []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).SetIntent(input.Axis, input.JustPressed(cfg.ActionJump))
		if input.JustPressed(cfg.ActionRespawn) {
			respawn = append(respawn, e)
		}
	})
	for _, e := range respawn {
		Respawn(ecs, e)
	}
}

func digitalAxis(input *components.InputData) float64 {
	axis := 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		axis--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		axis++
	}
	return axis
}

// analogAxis reads the left stick of the first gamepad past the deadzone.
func analogAxis(ids []ebiten.GamepadID) float64 {
	for _, gpID := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(v) > cfg.Input.AnalogDeadzone {
			return v
		}
	}
	return 0
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = factory.CreateInput(ecs)
	}
	return components.Input.Get(entry)
}
