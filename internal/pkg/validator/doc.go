// Package validator provides a small validation abstraction for request and
// domain structs, and for single form values checked against tag rules.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. Concrete implementations (for example
// go-playground/validator v10) live in this package together with the custom
// rules used by account forms (phone, personname, denychars, complexpassword,
// runelen, notblank).
package validator
