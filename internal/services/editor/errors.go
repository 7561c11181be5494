package editor

import "errors"

// ErrNoOpenSession is returned when Submit is called with no modal open.
var ErrNoOpenSession = errors.New("no open edit session")
