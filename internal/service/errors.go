package service

import "errors"

var (
	ErrPageLimitExceeded = errors.New("sync page limit exceeded")
	ErrInvalidUpdateID   = errors.New("invalid update id")
	ErrMissingUpdateInfo = errors.New("update has no matching update info")
	ErrMalformedXML      = errors.New("malformed update descriptor")
	ErrMalformedAppx     = errors.New("malformed appx applicability blob")
	ErrMissingIdentity   = errors.New("update record has no identity")

	ErrUnknownMachine       = errors.New("unknown machine type")
	ErrDigestMismatch       = errors.New("file digest mismatch")
	ErrDownloadFailed       = errors.New("file download failed")
	ErrDecrypterUnavailable = errors.New("no decrypter configured for encrypted file")
	ErrDecryptionFailed     = errors.New("file decryption failed")
	ErrBuildNotFound        = errors.New("build not found")
)
