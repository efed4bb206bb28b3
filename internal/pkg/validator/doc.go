// Package validator runs struct-tag validation with go-playground/validator
// and turns failures into a field to message map keyed by JSON names.
package validator
