package classifier

import "errors"

var (
	ErrClassifier         = errors.New("classifier")
	ErrCantDetermineIndex = errors.New("can't determine anime folder index")
)
