package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strings"

	"github.com/amanahq/amana-backend/utils"
)

func MustParseSigningKey(privateKeyString string) *rsa.PrivateKey {
	// multi-line env variables passed by docker-compose arrive with escaped newlines
	privateKeyString = strings.ReplaceAll(privateKeyString, "\\n", "\n")
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		log.Fatalf("failed to decode PEM block containing RSA private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("can't load AUTHENTICATION_JWT_SIGNING_KEY private key: %s", err)
	}
	return privateKey
}

// ReadParseOrGenerateSigningKey loads the token signing key from the env value
// or a key file. Without either, an ephemeral key is generated: tokens then
// stop validating across restarts, which is acceptable for development only.
func ReadParseOrGenerateSigningKey(ctx context.Context, keyString, keyFile string) *rsa.PrivateKey {
	if keyString != "" {
		return MustParseSigningKey(keyString)
	}
	if keyFile != "" {
		keyBytes, err := os.ReadFile(keyFile)
		if err != nil {
			log.Fatalf("can't read signing key file %s: %s", keyFile, err)
		}
		return MustParseSigningKey(string(keyBytes))
	}

	logger := utils.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "no AUTHENTICATION_JWT_SIGNING_KEY configured, generating an ephemeral key")
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("can't generate signing key: %s", err)
	}
	return privateKey
}
