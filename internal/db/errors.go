package db

// Op constants name store commands for error context.
const (
	OpFind   = "FIND"
	OpInsert = "INSERT"
	OpPing   = "PING"
	OpRPush  = "RPUSH"
	OpLRange = "LRANGE"
	OpExpire = "EXPIRE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
