package usecasecontract

import "time"

// IAppLogger is the logging port used by usecases and handlers.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type IConfigProvider interface {
	GetAppBaseURL() string
	GetFrontendURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
}

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
