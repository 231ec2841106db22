package metadata

import "errors"

var (
	ErrMetadata            = errors.New("metadata")
	ErrConnectDependencies = errors.New("failed to connect dependencies")
	ErrRoleNotApplicable   = errors.New("role carries no file metadata")
)
