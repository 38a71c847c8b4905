package errors

import (
	"lokabumi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same business code, so errors.Is
// still matches a WithDetails copy against its predefined original.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session/identity-related errors
	ErrEmailTaken = NewBaseError(
		"EMAIL_TAKEN",
		"此電子郵件已被註冊",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrNoActiveSession = NewBaseError(
		"NO_ACTIVE_SESSION",
		"目前沒有登入的使用者",
		"",
	)

	ErrSessionRestoreFailed = NewBaseError(
		"SESSION_RESTORE_FAILED",
		"無法還原先前的登入狀態",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Catalog-related errors
	ErrListingNotFound = NewBaseError(
		"LISTING_NOT_FOUND",
		"找不到該物件",
		"",
	)

	ErrNotListingOwner = NewBaseError(
		"NOT_LISTING_OWNER",
		"您沒有權限修改此物件",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		"ORDER_NOT_FOUND",
		"找不到該訂單",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		"INVALID_ORDER_STATUS",
		"無效的訂單狀態",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// StorageExecuteError represents a key-value storage failure, implementing
// the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// Unwrap exposes the underlying storage error for errors.Is/As.
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "本機儲存空間執行失敗"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
