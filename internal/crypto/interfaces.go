// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

// Package crypto implements the symmetric envelope codec used on the wire
// between the gateway and the e-courts upstream.
//
// The upstream speaks AES-CBC with PKCS#7 padding under two deployment-fixed
// keys: one for payloads the gateway sends (requests, including the bearer
// token forwarded in the Authorization header) and one for payloads the
// upstream sends back. Requests and responses use different envelope
// framings; see [EnvelopeCodec] for the exact formats.
//
// The cipher mode, key sizes, and IV table are deployment-fixed parameters
// that must be confirmed against the live upstream before rollout; the codec
// treats them as configuration, not as protocol constants it can verify.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_codec_mock.go -package=mock

// EnvelopeCodec encrypts and decrypts the wire envelopes exchanged with
// upstream. Implementations are safe for concurrent use: the only state they
// hold is immutable key material loaded at construction time.
//
// Request envelope format (gateway -> upstream):
//
//	randomIV(16 hex chars) ‖ tableIndex(1 digit) ‖ base64(ciphertext)
//
// The effective IV is tableIV[tableIndex] ‖ randomIV (16 bytes total). A
// fresh random half is drawn from the OS CSPRNG for every call, so two
// encryptions of identical plaintext never produce the same envelope.
//
// Response envelope format (upstream -> gateway):
//
//	iv(32 hex chars) ‖ base64(ciphertext)
type EnvelopeCodec interface {
	// EncryptRequest serializes v to compact JSON and seals it into a
	// request envelope under the request key. Returns an error if
	// marshalling or IV generation fails.
	EncryptRequest(v any) (string, error)

	// DecryptRequest opens a request envelope and unmarshals the plaintext
	// JSON into target. Returns [ErrMalformedEnvelope] (wrapped) if the
	// envelope cannot be split into IV and ciphertext, and
	// [ErrDecryptionFailed] (wrapped) if padding or the decrypted JSON does
	// not validate.
	DecryptRequest(envelope string, target any) error

	// EncryptResponse seals v into a response envelope under the response
	// key. The live upstream produces these; the gateway only needs this
	// direction for its own test fixtures, but the operation is part of the
	// codec so the round-trip law DecryptResponse(EncryptResponse(x)) == x
	// can be stated and checked.
	EncryptResponse(v any) (string, error)

	// DecryptResponse opens a response envelope and unmarshals the
	// plaintext JSON into target. Error semantics match DecryptRequest.
	DecryptResponse(envelope string, target any) error
}
