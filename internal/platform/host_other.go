//go:build !windows && !linux && !darwin

package platform

func Open(Router, Options) (Host, error) {
	return nil, ErrUnsupported
}
