// Package validator wraps go-playground/validator behind an injectable
// type so handlers share a single configured instance.
package validator

import "github.com/go-playground/validator/v10"

// Validator validates request structs by their validation tags.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator. Custom rules can be added with
// RegisterValidation before it is handed to the modules.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct validates a struct against its validation tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var validates a single value against a tag expression.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation adds a custom named validation rule.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}
