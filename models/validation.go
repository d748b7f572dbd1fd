package models

// Validation is the tagged outcome of a fetch or rule-check step: success,
// optionally carrying a value, or failure with one or more messages. A failed
// validation may still echo the attempted value so callers can tell
// "not found" (no value) apart from "rejected" (value echoed back).
type Validation[T any] struct {
	IsValid            bool     `json:"isValid"`
	ValidationMessages []string `json:"validationMessages,omitempty"`
	Value              *T       `json:"value,omitempty"`
}

func Valid[T any]() Validation[T] {
	return Validation[T]{IsValid: true}
}

func ValidValue[T any](value T) Validation[T] {
	return Validation[T]{IsValid: true, Value: &value}
}

func Invalid[T any](messages ...string) Validation[T] {
	return Validation[T]{ValidationMessages: messages}
}

func InvalidValue[T any](value T, messages ...string) Validation[T] {
	v := Invalid[T](messages...)
	v.Value = &value
	return v
}
