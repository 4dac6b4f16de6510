package utils

// Application constants
const (
	// Application name
	AppName = "ShopViet"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Store currency
	Currency = "VND"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Minimum rating
	MinRating = 1

	// Maximum rating
	MaxRating = 5

	// Fallback shipping charge when no zone rate resolves
	DefaultShippingCharge = 30000.0
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"

	// Validation errors
	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPassword = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	ErrInvalidPhone    = "Invalid phone number format"
	ErrInvalidPrice    = "Price must be greater than 0"
	ErrInvalidStock    = "Stock cannot be negative"
	ErrInvalidRating   = "Rating must be between 1 and 5"

	// Database errors
	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
)
