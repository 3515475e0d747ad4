// Package apierror provides the standardized error response structures for the
// API. All errors returned to clients go through this package so that internal
// details (stack traces, SQL errors) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// StockErrors carries the enumerated per-line messages of a rejected sale.
type StockErrors struct {
	Detail  string   `json:"error"`
	Errores []string `json:"errors"`
}

func NewStock(errores []string) *StockErrors {
	return &StockErrors{Detail: "Stock insuficiente o items invalidos", Errores: errores}
}
