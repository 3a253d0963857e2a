package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to user-facing messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // inverted price range
	ValidationUnknownValue = "VALIDATION_UNKNOWN_VALUE" // value outside a fixed vocabulary

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound = "PRODUCT_NOT_FOUND"

	// ==================== Cart (CART_) ====================
	CartPersistFailed = "CART_PERSIST_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExportError = "INTERNAL_EXPORT_ERROR"
)
