package credential

import "errors"

// Sentinel errors returned by the parser and the one-time-password
// generator. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidOtpURI is returned when an otp field carries an
	// otpauth:// URI that cannot be decoded as a URL.
	ErrInvalidOtpURI = errors.New("invalid otpauth URI")

	// ErrOtpSecretMissing is returned when an otpauth:// URI carries no
	// secret parameter.
	ErrOtpSecretMissing = errors.New("otpauth URI has no secret")

	// ErrUnsupportedOTPAlgorithm is returned at token-generation time
	// for any algorithm other than sha1, sha256 or sha512.
	ErrUnsupportedOTPAlgorithm = errors.New("unsupported OTP algorithm")
)
