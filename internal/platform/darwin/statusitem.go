//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <dispatch/dispatch.h>

// Go callback for the chevron's click action.
extern void goChevronClicked(void);

static NSStatusItem *g_separator = nil;
static NSStatusItem *g_chevron = nil;

@interface SBChevronTarget : NSObject
- (void)chevronClicked:(id)sender;
@end

@implementation SBChevronTarget
- (void)chevronClicked:(id)sender {
    goChevronClicked();
}
@end

static SBChevronTarget *g_chevronTarget = nil;

// Register both status items. The separator is a real layout participant
// with no visual presence: no content, zero alpha, and a disabled button so
// clicks pass through. Runs synchronously on the main queue because AppKit
// requires status item mutation there.
static void sb_create_items(double sepWidth) {
    dispatch_sync(dispatch_get_main_queue(), ^{
        NSStatusBar *bar = [NSStatusBar systemStatusBar];

        g_separator = [bar statusItemWithLength:sepWidth];
        g_separator.button.enabled = NO;
        g_separator.button.alphaValue = 0.0;

        g_chevron = [bar statusItemWithLength:NSSquareStatusItemLength];
        g_chevron.button.title = @"‹";
        g_chevronTarget = [[SBChevronTarget alloc] init];
        g_chevron.button.target = g_chevronTarget;
        g_chevron.button.action = @selector(chevronClicked:);
    });
}

static uint32_t sb_item_window_id(NSStatusItem *item) {
    if (item == nil || item.button == nil || item.button.window == nil) {
        return 0;
    }
    return (uint32_t)item.button.window.windowNumber;
}

static uint32_t sb_separator_window_id(void) {
    return sb_item_window_id(g_separator);
}

static uint32_t sb_chevron_window_id(void) {
    return sb_item_window_id(g_chevron);
}

// Report the separator's frame in the window server's coordinate space
// (origin at the top-left of the main display), converting from AppKit's
// bottom-left convention.
static int sb_separator_frame(double *x, double *y, double *w, double *h) {
    if (g_separator == nil || g_separator.button == nil || g_separator.button.window == nil) {
        return -1;
    }
    NSRect frame = g_separator.button.window.frame;
    CGFloat screenHeight = [[NSScreen screens] firstObject].frame.size.height;
    *x = frame.origin.x;
    *y = screenHeight - (frame.origin.y + frame.size.height);
    *w = frame.size.width;
    *h = frame.size.height;
    return 0;
}

// Resize the separator. AppKit relays the length change to its next layout
// pass, so the new width becomes observable only after the pass completes.
static int sb_set_separator_width(double w) {
    if (g_separator == nil) {
        return -1;
    }
    dispatch_async(dispatch_get_main_queue(), ^{
        g_separator.length = w;
    });
    return 0;
}

static void sb_remove_items(void) {
    dispatch_sync(dispatch_get_main_queue(), ^{
        NSStatusBar *bar = [NSStatusBar systemStatusBar];
        if (g_separator != nil) {
            [bar removeStatusItem:g_separator];
            g_separator = nil;
        }
        if (g_chevron != nil) {
            [bar removeStatusItem:g_chevron];
            g_chevron = nil;
        }
        g_chevronTarget = nil;
    });
}
*/
import "C"

import (
	"fmt"
	"sync"

	"github.com/stowbar/stowbar/internal/model"
)

// chevronHandler is invoked from the AppKit main thread when the chevron
// status item is clicked. Guarded because AppKit and the engine's actor run
// on different threads.
var (
	chevronMu      sync.Mutex
	chevronHandler func()
)

//export goChevronClicked
func goChevronClicked() {
	chevronMu.Lock()
	handler := chevronHandler
	chevronMu.Unlock()
	if handler != nil {
		handler()
	}
}

// StatusItems implements platform.StatusItemHost for macOS.
type StatusItems struct {
	created bool
}

// NewStatusItems creates the macOS status item host. Items are not
// registered until Create.
func NewStatusItems() *StatusItems {
	return &StatusItems{}
}

func (s *StatusItems) Create(separatorWidth float64, onChevron func()) error {
	if s.created {
		return fmt.Errorf("status items already created")
	}
	chevronMu.Lock()
	chevronHandler = onChevron
	chevronMu.Unlock()

	C.sb_create_items(C.double(separatorWidth))
	if C.sb_separator_window_id() == 0 {
		return fmt.Errorf("status bar refused the separator item")
	}
	s.created = true
	return nil
}

func (s *StatusItems) SeparatorWindowID() (model.WindowID, bool) {
	id := C.sb_separator_window_id()
	if id == 0 {
		return 0, false
	}
	return model.WindowID(id), true
}

func (s *StatusItems) SeparatorFrame() (model.Rect, bool) {
	var x, y, w, h C.double
	if C.sb_separator_frame(&x, &y, &w, &h) != 0 {
		return model.Rect{}, false
	}
	return model.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, true
}

func (s *StatusItems) SetSeparatorWidth(width float64) error {
	if C.sb_set_separator_width(C.double(width)) != 0 {
		return fmt.Errorf("separator item not created")
	}
	return nil
}

func (s *StatusItems) ChevronWindowID() (model.WindowID, bool) {
	id := C.sb_chevron_window_id()
	if id == 0 {
		return 0, false
	}
	return model.WindowID(id), true
}

func (s *StatusItems) Close() {
	if !s.created {
		return
	}
	C.sb_remove_items()
	chevronMu.Lock()
	chevronHandler = nil
	chevronMu.Unlock()
	s.created = false
}
