package utils

// API error codes shared between the middleware and handler layers. Every
// error response has the shape {"code": <one of these>, "msg": <detail>}.
const (
	ErrorValidation        = "VALIDATION_ERROR"
	ErrorDuplicateIdentity = "DUPLICATE_IDENTITY"
	ErrorTokenMissing      = "TOKEN_MISSING"
	ErrorTokenAuthFail     = "TOKEN_AUTH_FAIL"
	ErrorInvalidCredential = "INVALID_CREDENTIAL"
	ErrorNotFound          = "NOT_FOUND"
	ErrorSelfReference     = "SELF_REFERENCE"
	ErrorInternal          = "INTERNAL_ERROR"
)
