package service

import "errors"

var errNotSent = errors.New("email not sent")

// Delivery is the outcome of a best-effort email send. The zero value means sent.
type Delivery struct {
	err error
}

func Sent() Delivery { return Delivery{} }

func NotSent(err error) Delivery {
	if err == nil {
		err = errNotSent
	}
	return Delivery{err: err}
}

func (d Delivery) OK() bool { return d.err == nil }

// Err returns the provider failure, or nil when the message was accepted.
func (d Delivery) Err() error { return d.err }
