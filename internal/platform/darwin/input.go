//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>

// Post one left-button mouse event at (x, y). type: 0=down, 1=dragged,
// 2=up. withCommand sets the command modifier flag, which the system menu
// bar recognizes as the reorder gesture for status items.
static int cg_post_mouse(int type, double x, double y, int withCommand) {
    CGEventType eventType;
    switch (type) {
        case 0:
            eventType = kCGEventLeftMouseDown;
            break;
        case 1:
            eventType = kCGEventLeftMouseDragged;
            break;
        default:
            eventType = kCGEventLeftMouseUp;
            break;
    }

    CGPoint point = CGPointMake(x, y);
    CGEventRef event = CGEventCreateMouseEvent(NULL, eventType, point, kCGMouseButtonLeft);
    if (!event) {
        return -1;
    }
    if (withCommand) {
        CGEventSetFlags(event, kCGEventFlagMaskCommand);
    }
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
    return 0;
}
*/
import "C"

import "fmt"

// Input implements platform.InputPoster for macOS using CGEvent synthesis.
type Input struct{}

// NewInput creates the macOS input poster.
func NewInput() *Input {
	return &Input{}
}

func (in *Input) MouseDown(x, y float64, commandHeld bool) error {
	return postMouse(0, x, y, commandHeld)
}

func (in *Input) MouseDrag(x, y float64, commandHeld bool) error {
	return postMouse(1, x, y, commandHeld)
}

func (in *Input) MouseUp(x, y float64, commandHeld bool) error {
	return postMouse(2, x, y, commandHeld)
}

func (in *Input) Trusted() bool {
	return IsInputTrusted()
}

func postMouse(eventType int, x, y float64, commandHeld bool) error {
	held := C.int(0)
	if commandHeld {
		held = 1
	}
	if C.cg_post_mouse(C.int(eventType), C.double(x), C.double(y), held) != 0 {
		return fmt.Errorf("failed to create mouse event at (%.0f, %.0f)", x, y)
	}
	return nil
}
