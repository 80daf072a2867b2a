package utils

import (
	"crypto/sha1" //nolint:gosec // catalog digests are SHA-1 for older payloads
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Digest algorithm names as they appear in update metadata.
const (
	DigestSHA1   = "SHA1"
	DigestSHA256 = "SHA256"
)

// NewDigestHasher returns a fresh hash.Hash for the named algorithm. Names
// are matched case-insensitively; an empty name selects SHA1, the algorithm
// of the primary file digest.
//
// Example usage:
//
//	h, err := utils.NewDigestHasher("SHA256")
func NewDigestHasher(algorithm string) (hash.Hash, error) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "", DigestSHA1:
		return sha1.New(), nil //nolint:gosec
	case DigestSHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm %q", algorithm)
	}
}

// EncodeDigest formats a raw digest the way update metadata stores it:
// standard padded base64.
func EncodeDigest(sum []byte) string {
	return base64.StdEncoding.EncodeToString(sum)
}

// DigestReader consumes r and returns its base64 digest under algorithm.
//
// Example usage:
//
//	digest, err := utils.DigestReader(file, utils.DigestSHA256)
func DigestReader(r io.Reader, algorithm string) (string, error) {
	h, err := NewDigestHasher(algorithm)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(h, r); err != nil {
		return "", fmt.Errorf("error hashing content: %w", err)
	}
	return EncodeDigest(h.Sum(nil)), nil
}
