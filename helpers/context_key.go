package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyCallerID is a specific key for identifying the "caller_id" added to the http request
var ContextKeyCallerID = ContextKey("caller_id")
