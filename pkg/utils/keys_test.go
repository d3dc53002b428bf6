package utils

import (
	"crypto/x509"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyPair(t *testing.T) {
	publicKey, privateKey, err := GenerateKeyPair()
	assert.NoError(t, err)

	// Both halves are base64-encoded DER that standard crypto tooling can
	// parse back (PKIX public, PKCS#8 private).
	pubDER, err := base64.StdEncoding.DecodeString(publicKey)
	assert.NoError(t, err)
	_, err = x509.ParsePKIXPublicKey(pubDER)
	assert.NoError(t, err)

	privDER, err := base64.StdEncoding.DecodeString(privateKey)
	assert.NoError(t, err)
	_, err = x509.ParsePKCS8PrivateKey(privDER)
	assert.NoError(t, err)
}
