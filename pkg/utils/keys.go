package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
)

// GenerateKeyPair creates an RSA-2048 key pair for end-to-end message
// encryption. Both halves are returned as base64 DER so clients can import
// them with WebCrypto (spki / pkcs8) directly. The server never uses the
// keys itself; it only stores and hands them out.
func GenerateKeyPair() (publicKey string, privateKey string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", "", err
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", err
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(pubDER),
		base64.StdEncoding.EncodeToString(privDER),
		nil
}
