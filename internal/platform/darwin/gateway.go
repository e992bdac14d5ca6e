//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework Foundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

// Private window server (CGS/SkyLight) entry points. These carry no public
// header; the prototypes below match the symbols exported by CoreGraphics.
typedef int CGSConnectionID;
extern CGSConnectionID CGSMainConnectionID(void);
extern CGError CGSGetProcessMenuBarWindowList(CGSConnectionID cid, CGSConnectionID targetCid, int count, uint32_t *list, int *outCount);
extern CGError CGSGetOnScreenWindowCount(CGSConnectionID cid, CGSConnectionID targetCid, int *outCount);
extern CGError CGSGetOnScreenWindowList(CGSConnectionID cid, CGSConnectionID targetCid, int count, uint32_t *list, int *outCount);
extern CGError CGSGetScreenRectForWindow(CGSConnectionID cid, uint32_t wid, CGRect *outRect);
extern CGError CGSGetWindowLevel(CGSConnectionID cid, uint32_t wid, int *outLevel);

// List the window ids the window server registers as menu bar (status item)
// entries, across every process. Passing 0 as the target connection asks for
// all connections. Returns the number of ids written to buf, or -1.
static int cgs_menu_bar_windows(uint32_t *buf, int cap) {
    int count = 0;
    CGError err = CGSGetProcessMenuBarWindowList(CGSMainConnectionID(), 0, cap, buf, &count);
    if (err != kCGErrorSuccess) {
        return -1;
    }
    return count;
}

// List the window ids currently rendered on any display.
static int cgs_onscreen_windows(uint32_t *buf, int cap) {
    int count = 0;
    CGError err = CGSGetOnScreenWindowList(CGSMainConnectionID(), 0, cap, buf, &count);
    if (err != kCGErrorSuccess) {
        return -1;
    }
    return count;
}

static int cgs_window_frame(uint32_t wid, double *x, double *y, double *w, double *h) {
    CGRect rect;
    if (CGSGetScreenRectForWindow(CGSMainConnectionID(), wid, &rect) != kCGErrorSuccess) {
        return -1;
    }
    *x = rect.origin.x;
    *y = rect.origin.y;
    *w = rect.size.width;
    *h = rect.size.height;
    return 0;
}

static int cgs_window_level(uint32_t wid, int *level) {
    if (CGSGetWindowLevel(CGSMainConnectionID(), wid, level) != kCGErrorSuccess) {
        return -1;
    }
    return 0;
}

// Per-window result of the public CGWindowListCopyWindowInfo enumeration.
typedef struct {
    uint32_t windowID;
    int32_t pid;
    int32_t onScreen;
    double x, y, width, height;
    char ownerName[256];
    char title[256];
} WindowMetaC;

static void copy_cf_string(CFDictionaryRef dict, CFStringRef key, char *dst, size_t cap) {
    dst[0] = '\0';
    CFStringRef s = (CFStringRef)CFDictionaryGetValue(dict, key);
    if (s) {
        CFStringGetCString(s, dst, cap, kCFStringEncodingUTF8);
    }
}

// Copy metadata for every window the public enumeration reports, on-screen
// or not. The caller filters to the ids it cares about and frees the array
// with cg_free_meta.
static WindowMetaC* cg_copy_window_meta(int *count) {
    *count = 0;
    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionAll | kCGWindowListExcludeDesktopElements, kCGNullWindowID);
    if (list == NULL) {
        return NULL;
    }

    CFIndex n = CFArrayGetCount(list);
    WindowMetaC *metas = (WindowMetaC *)calloc(n, sizeof(WindowMetaC));
    if (metas == NULL) {
        CFRelease(list);
        return NULL;
    }

    int valid = 0;
    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef info = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
        WindowMetaC *m = &metas[valid];

        CFNumberRef num = (CFNumberRef)CFDictionaryGetValue(info, kCGWindowNumber);
        if (num == NULL || !CFNumberGetValue(num, kCFNumberSInt32Type, &m->windowID)) {
            continue;
        }

        num = (CFNumberRef)CFDictionaryGetValue(info, kCGWindowOwnerPID);
        if (num) {
            CFNumberGetValue(num, kCFNumberSInt32Type, &m->pid);
        }

        CFBooleanRef onscreen = (CFBooleanRef)CFDictionaryGetValue(info, kCGWindowIsOnscreen);
        m->onScreen = (onscreen != NULL && CFBooleanGetValue(onscreen)) ? 1 : 0;

        CFDictionaryRef boundsDict = (CFDictionaryRef)CFDictionaryGetValue(info, kCGWindowBounds);
        if (boundsDict) {
            CGRect bounds;
            if (CGRectMakeWithDictionaryRepresentation(boundsDict, &bounds)) {
                m->x = bounds.origin.x;
                m->y = bounds.origin.y;
                m->width = bounds.size.width;
                m->height = bounds.size.height;
            }
        }

        copy_cf_string(info, kCGWindowOwnerName, m->ownerName, sizeof(m->ownerName));
        copy_cf_string(info, kCGWindowName, m->title, sizeof(m->title));

        valid++;
    }

    CFRelease(list);
    *count = valid;
    return metas;
}

static void cg_free_meta(WindowMetaC *metas) {
    free(metas);
}
*/
import "C"

import (
	"unsafe"

	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

// maxWindows caps the id buffers handed to the CGS list calls. The menu bar
// holds a few dozen items at most; the on-screen list is larger but bounded.
const maxWindows = 1024

// Gateway implements platform.WindowGateway for macOS.
type Gateway struct{}

// NewGateway creates the macOS window server gateway.
func NewGateway() *Gateway {
	return &Gateway{}
}

func (g *Gateway) MenuBarWindows() ([]model.WindowID, error) {
	buf := make([]C.uint32_t, maxWindows)
	n := C.cgs_menu_bar_windows(&buf[0], C.int(len(buf)))
	if n < 0 {
		// The window server refused the query; no data this cycle.
		return nil, nil
	}
	return toWindowIDs(buf[:n]), nil
}

func (g *Gateway) OnScreenWindows() ([]model.WindowID, error) {
	buf := make([]C.uint32_t, maxWindows)
	n := C.cgs_onscreen_windows(&buf[0], C.int(len(buf)))
	if n < 0 {
		return nil, nil
	}
	return toWindowIDs(buf[:n]), nil
}

func (g *Gateway) WindowFrame(id model.WindowID) (model.Rect, bool) {
	var x, y, w, h C.double
	if C.cgs_window_frame(C.uint32_t(id), &x, &y, &w, &h) != 0 {
		return model.Rect{}, false
	}
	return model.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}, true
}

func (g *Gateway) WindowLevel(id model.WindowID) (int, bool) {
	var level C.int
	if C.cgs_window_level(C.uint32_t(id), &level) != 0 {
		return 0, false
	}
	return int(level), true
}

func (g *Gateway) WindowMetadata(ids []model.WindowID) (map[model.WindowID]platform.WindowMeta, error) {
	wanted := make(map[model.WindowID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var cCount C.int
	cMetas := C.cg_copy_window_meta(&cCount)
	if cMetas == nil {
		return map[model.WindowID]platform.WindowMeta{}, nil
	}
	defer C.cg_free_meta(cMetas)

	metas := make(map[model.WindowID]platform.WindowMeta, len(ids))
	cSlice := unsafe.Slice(cMetas, int(cCount))
	for i := range cSlice {
		cm := &cSlice[i]
		id := model.WindowID(cm.windowID)
		if !wanted[id] {
			continue
		}
		metas[id] = platform.WindowMeta{
			OwnerPID:  int(cm.pid),
			OwnerName: C.GoString(&cm.ownerName[0]),
			Title:     C.GoString(&cm.title[0]),
			Bounds: model.Rect{
				X: float64(cm.x),
				Y: float64(cm.y),
				W: float64(cm.width),
				H: float64(cm.height),
			},
			OnScreen: cm.onScreen != 0,
		}
	}
	return metas, nil
}

func toWindowIDs(buf []C.uint32_t) []model.WindowID {
	ids := make([]model.WindowID, len(buf))
	for i, v := range buf {
		ids[i] = model.WindowID(v)
	}
	return ids
}
