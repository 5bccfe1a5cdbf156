//go:build !darwin

package platform

// BringToFront is a no-op; other window managers raise on Show
func BringToFront() {}
