package input

import (
	"time"

	"github.com/eiannone/keyboard"
	"github.com/trytobebee/food_run/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// Poll waits up to timeout for a key. It returns false on timeout.
func (h *KeyboardHandler) Poll(timeout time.Duration) (KeyInput, bool) {
	return poll(h.inputChan, timeout)
}

// PollDirection waits up to timeout for a key and decodes it.
// Keys that are not directions come back as game.DirNone with ok set.
func (h *KeyboardHandler) PollDirection(timeout time.Duration) (dir game.Direction, in KeyInput, ok bool) {
	in, ok = h.Poll(timeout)
	if !ok {
		return game.DirNone, in, false
	}
	dir, _ = ParseDirection(in)
	return dir, in, true
}

// Drain discards keys that are already waiting
func (h *KeyboardHandler) Drain() {
	drain(h.inputChan)
}

func poll(ch <-chan KeyInput, timeout time.Duration) (KeyInput, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case in := <-ch:
		return in, true
	case <-timer.C:
		return KeyInput{}, false
	}
}

func drain(ch <-chan KeyInput) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.DirUp, true
	case keyboard.KeyArrowDown:
		return game.DirDown, true
	case keyboard.KeyArrowLeft:
		return game.DirLeft, true
	case keyboard.KeyArrowRight:
		return game.DirRight, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.DirUp, true
	case 's', 'S':
		return game.DirDown, true
	case 'a', 'A':
		return game.DirLeft, true
	case 'd', 'D':
		return game.DirRight, true
	}

	return game.DirNone, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}
