package action

import "errors"

var ErrUnknownAction = errors.New("unknown action: press one of the buttons")
