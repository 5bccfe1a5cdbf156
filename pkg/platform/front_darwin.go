//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void bringToFront() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// BringToFront activates the app so a window shown from the menu bar lands
// above other applications
func BringToFront() {
	C.bringToFront()
}
