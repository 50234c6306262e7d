package crypto

import "errors"

var (
	// ErrInvalidKey indicates that a configured envelope key is not valid
	// hex or has a length AES does not accept.
	ErrInvalidKey = errors.New("invalid envelope key")

	// ErrMalformedEnvelope indicates that an envelope string could not be
	// parsed into its IV and ciphertext parts.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDecryptionFailed indicates that the ciphertext failed the padding
	// or plaintext-format check after decryption (wrong key, corruption, or
	// tampering).
	ErrDecryptionFailed = errors.New("decryption failed")
)
