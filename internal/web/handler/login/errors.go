// Package login provides HTTP handlers and helpers for user authentication.
//
// This file defines exported error values and fixed messages used throughout
// the login flow.
package login

import "errors"

// RoleGateMessage is the fixed field-scoped message returned to principals
// whose credentials are valid but whose role does not grant access.
const RoleGateMessage = "No tiene acceso al sistema. Actualmente solo los administradores pueden ingresar."

// InvalidCredentialsMessage is the fixed message for unknown email or wrong
// password.
const InvalidCredentialsMessage = "Las credenciales proporcionadas no son correctas."

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed
	// or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided email and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
