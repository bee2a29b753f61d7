package utils

import "errors"

// ErrUserInitiatedExit is returned when the user asks to stop, by quitting,
// sending an empty line or interrupting.
var ErrUserInitiatedExit = errors.New("user exit")
