//go:build !darwin || !cgo

package platform

func newQuartz() (Quartz, error) {
	return nil, ErrPlatformUnsupported
}
