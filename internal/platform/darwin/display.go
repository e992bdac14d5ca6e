//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics -framework Foundation
#import <AppKit/AppKit.h>
#include <CoreGraphics/CoreGraphics.h>

static double ns_menu_bar_height(void) {
    return [[NSStatusBar systemStatusBar] thickness];
}

static void cg_main_screen_bounds(double *x, double *y, double *w, double *h) {
    CGRect bounds = CGDisplayBounds(CGMainDisplayID());
    *x = bounds.origin.x;
    *y = bounds.origin.y;
    *w = bounds.size.width;
    *h = bounds.size.height;
}
*/
import "C"

import "github.com/stowbar/stowbar/internal/model"

// Display implements platform.DisplayMetrics for macOS. Values are read
// fresh on every call so monitor and resolution changes are picked up.
type Display struct{}

// NewDisplay creates the macOS display metrics reader.
func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) MenuBarHeight() float64 {
	return float64(C.ns_menu_bar_height())
}

func (d *Display) MainScreenBounds() model.Rect {
	var x, y, w, h C.double
	C.cg_main_screen_bounds(&x, &y, &w, &h)
	return model.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}
