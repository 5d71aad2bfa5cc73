package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.Loader = (*Loader)(nil)

// Loader is a mock implementation of pagemd.Loader.
type Loader struct {
	LoadFn func(path string) (string, error)
}

func (l *Loader) Load(path string) (string, error) {
	return l.LoadFn(path)
}
