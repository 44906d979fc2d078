package usecase

// Error codes carried by the typed errors below. Handlers map these to
// HTTP status codes; nothing else should inspect the message text.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidTarget = "INVALID_TARGET"
	CodeStorage       = "STORAGE_ERROR"
	CodeDispatch      = "DISPATCH_ERROR"
	CodeConfiguration = "NOT_CONFIGURED"
	CodeNotFound      = "NOT_FOUND"
)

// ValidationError: a required field was missing or malformed. Caller's fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// InvalidTargetError: the request named a table outside the allow-list.
type InvalidTargetError struct {
	Table string
}

func (e *InvalidTargetError) Error() string {
	return "Invalid table name"
}

func IsInvalidTargetError(err error) bool {
	_, ok := err.(*InvalidTargetError)
	return ok
}

// StorageError: the datastore was unreachable or rejected the operation.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func IsStorageError(err error) bool {
	_, ok := err.(*StorageError)
	return ok
}

// DispatchError: the email provider refused or failed the send. The
// provider detail is surfaced to the operator, not to end users.
type DispatchError struct {
	Detail string
	Cause  error
}

func (e *DispatchError) Error() string {
	return e.Detail
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

func IsDispatchError(err error) bool {
	_, ok := err.(*DispatchError)
	return ok
}

// ConfigurationError: a required credential is absent. Detected at the
// handler boundary before any external call is made.
type ConfigurationError struct {
	Service string
}

func (e *ConfigurationError) Error() string {
	return e.Service + " not configured"
}

func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// NotFoundError: the id matched zero rows.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "record not found"
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}
