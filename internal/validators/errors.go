package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOrigin     = errors.New("origin is required")
	ErrEmptyStoreID    = errors.New("store ID is required")
	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyField      = errors.New("field name is required")
	ErrInvalidField    = errors.New("invalid credential field name")
	ErrEmptyPairingKey = errors.New("pairing key is required")
)
