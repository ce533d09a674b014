package httperror

const (
	// InvalidModuleName is returned when a caller-supplied module identifier
	// fails the module-name validity check.
	InvalidModuleName = "invalid_module_name"
	// InvalidParam is returned where a URL parameter, or other type of generalized parameters value is invalid.
	InvalidParam = "invalid_parameter"
	// PreconditionFailed is returned when an operation is invoked outside the
	// runtime context it requires, such as an admin URL requested outside the
	// back office.
	PreconditionFailed = "precondition_failed"
	// Environment is returned when a required request or server environment
	// value is entirely absent; callers are not expected to recover from it.
	Environment = "environment"
	// Unexpected is returned when the cause of the failure is unknown.
	Unexpected = "unexpected"
)
