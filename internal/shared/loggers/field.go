package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldEndpoint = "endpoint"
	FieldPage     = "page"
	FieldPages    = "pages"
	FieldFormat   = "format"
	FieldSavePath = "save_path"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"
)
