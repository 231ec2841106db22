package resolver

import "errors"

var (
	ErrResolver            = errors.New("resolver")
	ErrConnectDependencies = errors.New("failed to connect dependencies")
	ErrCantResolveItem     = errors.New("can't resolve item")
)
