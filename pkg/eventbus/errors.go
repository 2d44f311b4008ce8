package eventbus

import "errors"

var (
	ErrBusClosed  = errors.New("eventbus: bus is closed")
	ErrNilEvent   = errors.New("eventbus: event is nil")
	ErrNilHandler = errors.New("eventbus: handler is nil")
	ErrEmptyTopic = errors.New("eventbus: topic is empty")
)
