// Package errors provides structured demo errors with i18n support.
package errors

// Code is a machine-readable error code. Codes double as keys in the
// "errors" namespace of the locale catalogs.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Game object errors
	CodeObroundLengthBelowHeight Code = "OBROUND_LENGTH_BELOW_HEIGHT"

	// Dice errors
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Character errors
	CodeCharacterNameRequired Code = "CHARACTER_NAME_REQUIRED"
	CodeCharacterHealthFloor  Code = "CHARACTER_HEALTH_FLOOR"

	// Database errors
	CodeDatabaseNotConnected Code = "DATABASE_NOT_CONNECTED"
	CodeDatabaseOpenFailed   Code = "DATABASE_OPEN_FAILED"
	CodeDatabaseQueryFailed  Code = "DATABASE_QUERY_FAILED"
)
