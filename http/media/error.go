package media

import "errors"

var ErrNoHandler = errors.New("no handler")
