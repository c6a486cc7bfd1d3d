package database

import "errors"

var ErrNotFound = errors.New("not found")

// QueryError is a failure of the data store itself (connection, SQL, scan).
// It is reported as is; the store never retries.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return "database " + e.Op + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
