//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

// Resolve a pid to its running application's display name and bundle
// identifier. Caller frees both strings. Returns -1 when no running
// application matches the pid.
static int ns_lookup_app(pid_t pid, char **name, char **bundleID) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (app == nil) {
        return -1;
    }
    const char *n = app.localizedName ? app.localizedName.UTF8String : "";
    const char *b = app.bundleIdentifier ? app.bundleIdentifier.UTF8String : "";
    *name = strdup(n);
    *bundleID = strdup(b);
    return 0;
}

static int ns_activate_app(pid_t pid) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (app == nil) {
        return -1;
    }
    return [app activateWithOptions:NSApplicationActivateIgnoringOtherApps] ? 0 : -1;
}

// Copy the application icon for a pid as PNG bytes. Caller frees *out.
static int ns_app_icon_png(pid_t pid, unsigned char **out, int *outLen) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (app == nil || app.icon == nil) {
        return -1;
    }
    NSImage *icon = app.icon;
    CGImageRef cgImage = [icon CGImageForProposedRect:NULL context:nil hints:nil];
    if (cgImage == NULL) {
        return -1;
    }
    NSBitmapImageRep *rep = [[NSBitmapImageRep alloc] initWithCGImage:cgImage];
    NSData *png = [rep representationUsingType:NSBitmapImageFileTypePNG properties:@{}];
    if (png == nil || png.length == 0) {
        return -1;
    }
    *outLen = (int)png.length;
    *out = (unsigned char *)malloc(png.length);
    memcpy(*out, png.bytes, png.length);
    return 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/stowbar/stowbar/internal/platform"
)

// Processes implements platform.ProcessResolver for macOS via the shared
// NSWorkspace running-application table.
type Processes struct{}

// NewProcesses creates the macOS process resolver.
func NewProcesses() *Processes {
	return &Processes{}
}

func (p *Processes) Lookup(pid int) (platform.ProcessInfo, bool) {
	if pid <= 0 {
		return platform.ProcessInfo{}, false
	}
	var cName, cBundle *C.char
	if C.ns_lookup_app(C.pid_t(pid), &cName, &cBundle) != 0 {
		return platform.ProcessInfo{}, false
	}
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cBundle))

	return platform.ProcessInfo{
		PID:      pid,
		Name:     C.GoString(cName),
		BundleID: C.GoString(cBundle),
	}, true
}

func (p *Processes) Activate(pid int) error {
	if C.ns_activate_app(C.pid_t(pid)) != 0 {
		return fmt.Errorf("failed to activate app with PID %d", pid)
	}
	return nil
}

func (p *Processes) IconPNG(pid int) ([]byte, error) {
	var cBytes *C.uchar
	var cLen C.int
	if C.ns_app_icon_png(C.pid_t(pid), &cBytes, &cLen) != 0 {
		return nil, fmt.Errorf("no icon available for PID %d", pid)
	}
	defer C.free(unsafe.Pointer(cBytes))
	return C.GoBytes(unsafe.Pointer(cBytes), cLen), nil
}
