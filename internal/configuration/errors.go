package configuration

import "errors"

var (
	ErrConfiguration        = errors.New("configuration")
	ErrCantReadConfigFile   = errors.New("can't read config file")
	ErrCantParseConfigFile  = errors.New("can't parse config file")
	ErrCantWriteConfigFile  = errors.New("can't write config file")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
