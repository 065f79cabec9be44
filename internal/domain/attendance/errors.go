package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrNoOpenArrival    = errors.New("no open arrival for today")
)
