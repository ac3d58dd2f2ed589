//go:build !unix

package terminal

// DetectBackground is unsupported on this platform
func DetectBackground() (RGB, bool) {
	return RGBBlack, false
}
