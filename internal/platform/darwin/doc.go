// Package darwin provides macOS platform support for the window server
// gateway, status items, input synthesis, and process resolution. All
// functionality requires CGo (CoreGraphics, AppKit, and ApplicationServices
// frameworks); on other platforms the package compiles to an empty stub and
// registers nothing.
package darwin
