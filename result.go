package fieldset

import "github.com/reoring/fieldset/i18n"

// Result codes (exported consts for IDE completion and type safety by convention)
const (
	CodeValid   = "valid"
	CodeMissing = "missing_value"
	CodeInvalid = "invalid_value"
)

// Result is the immutable outcome for a single field. Instances are built
// through the three named constructors below; the zero value is not a valid
// Result.
type Result struct {
	key     string
	value   any
	valid   bool
	message string
	code    string
}

// ForValidValue records a value that passed validation. The message is empty.
func ForValidValue(key string, value any) Result {
	return Result{key: key, value: value, valid: true, code: CodeValid}
}

// ForMissingValue records a required field absent from the payload. With no
// message argument the text comes from the i18n dictionary for CodeMissing
// ("Missing required value" in the default language).
func ForMissingValue(key string, message ...string) Result {
	msg := i18n.T(CodeMissing, map[string]string{"key": key})
	if len(message) > 0 {
		msg = message[len(message)-1]
	}
	return Result{key: key, valid: false, message: msg, code: CodeMissing}
}

// ForInvalidValue records a value that failed validation. The value is kept
// so callers can echo it back alongside the message.
func ForInvalidValue(key string, value any, message string) Result {
	return Result{key: key, value: value, valid: false, message: message, code: CodeInvalid}
}

// Key returns the field name this result belongs to.
func (r Result) Key() string { return r.key }

// Value returns the resolved value; nil for missing-value results.
func (r Result) Value() any { return r.value }

// Valid reports whether the field passed validation.
func (r Result) Valid() bool { return r.valid }

// Message returns the failure explanation, or "" for valid results.
func (r Result) Message() string { return r.message }

// Code returns CodeValid, CodeMissing, or CodeInvalid.
func (r Result) Code() string { return r.code }
