package scanner

import "errors"

var (
	ErrScanner             = errors.New("scanner")
	ErrConnectDependencies = errors.New("failed to connect dependencies")
	ErrCantReadDirectory   = errors.New("can't read directory")
	ErrNotADirectory       = errors.New("scan root is not a directory")
)
