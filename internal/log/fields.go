package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldSource    = "source"
	FieldRecords   = "records"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentInventory = "inventory"
	ComponentCache     = "cache"
	ComponentImport    = "import"
)
