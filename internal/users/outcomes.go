package users

import "github.com/masjidapp/backend/internal/outcome"

// RegistrationStatus is the closed set of registration results.
type RegistrationStatus int

const (
	Registered RegistrationStatus = iota
	AlreadyRegistered
	RegistrationFailed
)

// RegistrationOutcome reports how a registration ended. Reason is set only
// when Status is RegistrationFailed.
type RegistrationOutcome struct {
	Status RegistrationStatus
	Reason outcome.Reason
}

// LoginStatus is the closed set of login results. An unknown username and a
// wrong secret are deliberately indistinguishable.
type LoginStatus int

const (
	Authenticated LoginStatus = iota
	InvalidCredentials
)

// LoginOutcome carries the session subject when Status is Authenticated.
type LoginOutcome struct {
	Status  LoginStatus
	Subject string
}

// ResetStatus is the closed set of password-reset results.
type ResetStatus int

const (
	PasswordReset ResetStatus = iota
	UserNotFound
	ResetFailed
)

// ResetOutcome reports how a password reset ended. Reason is set only when
// Status is ResetFailed.
type ResetOutcome struct {
	Status ResetStatus
	Reason outcome.Reason
}
