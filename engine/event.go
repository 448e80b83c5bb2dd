package engine

import "fmt"

// EventKind identifies the concrete type of an Event.
type EventKind int

const (
	// KindWindowClosed is the kind of WindowClosed.
	KindWindowClosed EventKind = iota
	// KindWindowResized is the kind of WindowResized.
	KindWindowResized
	// KindFocusLost is the kind of FocusLost.
	KindFocusLost
	// KindFocusGained is the kind of FocusGained.
	KindFocusGained
	// KindTextEntered is the kind of TextEntered.
	KindTextEntered
	// KindKeyPressed is the kind of KeyPressed.
	KindKeyPressed
	// KindKeyReleased is the kind of KeyReleased.
	KindKeyReleased
	// KindMouseButtonPressed is the kind of MouseButtonPressed.
	KindMouseButtonPressed
	// KindMouseButtonReleased is the kind of MouseButtonReleased.
	KindMouseButtonReleased
	// KindMouseMoved is the kind of MouseMoved.
	KindMouseMoved
	// KindMouseWheelScrolled is the kind of MouseWheelScrolled.
	KindMouseWheelScrolled

	numKinds
)

var kindNames = [numKinds]string{
	"WindowClosed",
	"WindowResized",
	"FocusLost",
	"FocusGained",
	"TextEntered",
	"KeyPressed",
	"KeyReleased",
	"MouseButtonPressed",
	"MouseButtonReleased",
	"MouseMoved",
	"MouseWheelScrolled",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one of the event structs in this file. The set is closed;
// switch on the concrete type or on Kind.
type Event interface {
	Kind() EventKind
	isEvent()
}

// Key names a keyboard key, e.g. "A", "Space", "Escape", "ArrowLeft".
type Key string

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// WindowClosed is sent when the user asks to close the window. The engine
// stops after the frame that receives it.
type WindowClosed struct{}

// WindowResized carries the new window size in pixels.
type WindowResized struct {
	Width, Height int
}

// FocusLost is sent when the window loses input focus.
type FocusLost struct{}

// FocusGained is sent when the window gains input focus.
type FocusGained struct{}

// TextEntered carries one character of text input.
type TextEntered struct {
	Rune rune
}

// KeyPressed is sent on the frame a key goes down.
type KeyPressed struct {
	Key Key
}

// KeyReleased is sent on the frame a key goes up.
type KeyReleased struct {
	Key Key
}

// MouseButtonPressed is sent on the frame a button goes down.
type MouseButtonPressed struct {
	Button MouseButton
	X, Y   int
}

// MouseButtonReleased is sent on the frame a button goes up.
type MouseButtonReleased struct {
	Button MouseButton
	X, Y   int
}

// MouseMoved carries the new cursor position.
type MouseMoved struct {
	X, Y int
}

// MouseWheelScrolled carries the wheel offsets for one frame.
type MouseWheelScrolled struct {
	DX, DY float64
}

func (WindowClosed) Kind() EventKind        { return KindWindowClosed }
func (WindowResized) Kind() EventKind       { return KindWindowResized }
func (FocusLost) Kind() EventKind           { return KindFocusLost }
func (FocusGained) Kind() EventKind         { return KindFocusGained }
func (TextEntered) Kind() EventKind         { return KindTextEntered }
func (KeyPressed) Kind() EventKind          { return KindKeyPressed }
func (KeyReleased) Kind() EventKind         { return KindKeyReleased }
func (MouseButtonPressed) Kind() EventKind  { return KindMouseButtonPressed }
func (MouseButtonReleased) Kind() EventKind { return KindMouseButtonReleased }
func (MouseMoved) Kind() EventKind          { return KindMouseMoved }
func (MouseWheelScrolled) Kind() EventKind  { return KindMouseWheelScrolled }

func (WindowClosed) isEvent()        {}
func (WindowResized) isEvent()       {}
func (FocusLost) isEvent()           {}
func (FocusGained) isEvent()         {}
func (TextEntered) isEvent()         {}
func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (MouseMoved) isEvent()          {}
func (MouseWheelScrolled) isEvent()  {}
