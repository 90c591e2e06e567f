package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrMissingToken           = errors.New("token not received from API")
	ErrMissingUser            = errors.New("user not received from API")
	ErrMalformedAuthResponse  = errors.New("malformed authentication response")
	ErrCorruptPersistedRecord = errors.New("persisted session record is corrupt")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// Team errors
	ErrUnknownFormation = errors.New("unknown formation")
)
