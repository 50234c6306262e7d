// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// tableIVs are the fixed first halves of the request IV, shared out-of-band
// with upstream. Each entry is 8 bytes (16 hex chars); the envelope carries
// only the table index, never the half itself.
var tableIVs = [...]string{
	"556A586E32723575",
	"34743777217A2543",
	"413F4428472B4B62",
	"48404D635166546A",
	"614E645267556B58",
	"655368566D597133",
}

const (
	randomIVHexLen   = 16 // 8 random bytes, hex-encoded
	responseIVHexLen = 32 // full 16-byte IV, hex-encoded
)

// envelopeCodec is the private implementation of [EnvelopeCodec]. It holds
// only immutable key material, so a single instance is shared process-wide
// and read concurrently without synchronisation.
type envelopeCodec struct {
	requestKey  []byte
	responseKey []byte
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] from the two hex-encoded
// deployment keys. Returns [ErrInvalidKey] (wrapped) if either key is not
// valid hex or is rejected by the cipher.
func NewEnvelopeCodec(requestKeyHex, responseKeyHex string) (EnvelopeCodec, error) {
	requestKey, err := decodeKey("request", requestKeyHex)
	if err != nil {
		return nil, err
	}

	responseKey, err := decodeKey("response", responseKeyHex)
	if err != nil {
		return nil, err
	}

	return &envelopeCodec{requestKey: requestKey, responseKey: responseKey}, nil
}

func decodeKey(name, keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(keyHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %s key is not valid hex: %v", ErrInvalidKey, name, err)
	}

	// aes.NewCipher is the authority on acceptable key lengths.
	if _, err := aes.NewCipher(key); err != nil {
		return nil, fmt.Errorf("%w: %s key: %v", ErrInvalidKey, name, err)
	}

	return key, nil
}

// EncryptRequest implements [EnvelopeCodec].
func (c *envelopeCodec) EncryptRequest(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal plaintext: %w", err)
	}

	// Fresh IV per call: random table half + random 8 bytes. The random
	// half rides in the envelope, the table half only as its index.
	tableIndex, err := randomTableIndex()
	if err != nil {
		return "", fmt.Errorf("pick table IV: %w", err)
	}

	randomHalf := make([]byte, randomIVHexLen/2)
	if _, err := io.ReadFull(rand.Reader, randomHalf); err != nil {
		return "", fmt.Errorf("generate IV: %w", err)
	}
	randomHex := hex.EncodeToString(randomHalf)

	iv, err := hex.DecodeString(tableIVs[tableIndex] + randomHex)
	if err != nil {
		return "", fmt.Errorf("assemble IV: %w", err)
	}

	ciphertext, err := encryptCBC(c.requestKey, iv, plaintext)
	if err != nil {
		return "", err
	}

	return randomHex + string('0'+rune(tableIndex)) + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptRequest implements [EnvelopeCodec].
func (c *envelopeCodec) DecryptRequest(envelope string, target any) error {
	envelope = strings.TrimSpace(envelope)
	if len(envelope) <= randomIVHexLen+1 {
		return fmt.Errorf("%w: too short", ErrMalformedEnvelope)
	}

	randomHex := envelope[:randomIVHexLen]
	indexChar := envelope[randomIVHexLen]
	tableIndex := int(indexChar - '0')
	if tableIndex < 0 || tableIndex >= len(tableIVs) {
		return fmt.Errorf("%w: invalid table IV index %q", ErrMalformedEnvelope, string(indexChar))
	}

	iv, err := hex.DecodeString(tableIVs[tableIndex] + randomHex)
	if err != nil {
		return fmt.Errorf("%w: invalid IV hex: %v", ErrMalformedEnvelope, err)
	}

	return c.open(c.requestKey, iv, envelope[randomIVHexLen+1:], target)
}

// EncryptResponse implements [EnvelopeCodec].
func (c *envelopeCodec) EncryptResponse(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal plaintext: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate IV: %w", err)
	}

	ciphertext, err := encryptCBC(c.responseKey, iv, plaintext)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(iv) + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptResponse implements [EnvelopeCodec].
func (c *envelopeCodec) DecryptResponse(envelope string, target any) error {
	envelope = strings.TrimSpace(envelope)
	if len(envelope) <= responseIVHexLen {
		return fmt.Errorf("%w: too short", ErrMalformedEnvelope)
	}

	iv, err := hex.DecodeString(envelope[:responseIVHexLen])
	if err != nil {
		return fmt.Errorf("%w: invalid IV hex: %v", ErrMalformedEnvelope, err)
	}

	return c.open(c.responseKey, iv, envelope[responseIVHexLen:], target)
}

// open base64-decodes the ciphertext part of an envelope, decrypts it under
// key and iv, strips padding and unmarshals the plaintext JSON into target.
func (c *envelopeCodec) open(key, iv []byte, ciphertextB64 string, target any) error {
	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return fmt.Errorf("%w: invalid base64 ciphertext: %v", ErrMalformedEnvelope, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: ciphertext is not block-aligned", ErrMalformedEnvelope)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	// CBC carries no authentication tag; padding plus the plaintext being
	// valid JSON is the only format check the protocol offers.
	plaintext, err := pkcs7Unpad(padded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: plaintext is not valid JSON: %v", ErrDecryptionFailed, err)
	}

	return nil
}

func encryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

func randomTableIndex() (int, error) {
	var b [1]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		return 0, err
	}
	return int(b[0]) % len(tableIVs), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > len(data) {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
