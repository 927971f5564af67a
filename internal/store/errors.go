package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// Kind classifies where a data-access failure originated.
type Kind int

const (
	KindQuery Kind = iota
	KindConnection
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindDecode:
		return "decode"
	default:
		return "query"
	}
}

// Error is returned by every Store read. Callers should not inspect Err for
// anything but logging.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func queryError(op string, err error) error {
	kind := KindQuery
	if isConnError(err) {
		kind = KindConnection
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func decodeError(op string, err error) error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}

// database/sql reports a closed pool with an unexported error value, so the
// message is the only thing to match on.
func isConnError(err error) bool {
	return errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) ||
		err.Error() == "sql: database is closed"
}
