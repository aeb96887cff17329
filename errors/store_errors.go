// errors/store_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrAuditLogWrite     = errors.New("failed to write audit log")
)
