package commands

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/keyring"
)

const (
	keyringServiceName = "aeries-cli"

	envKeyringBackend  = "AERIES_KEYRING_BACKEND"
	envKeyringPassword = "AERIES_KEYRING_PASSWORD"

	keyringBackendFile   = "file"
	keyringBackendSystem = "system"
)

// openKeyring is a package-level function for opening keyrings.
// It can be replaced in tests to use a mock keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

// SetOpenKeyring allows replacing the keyring opener for testing.
// Returns a cleanup function that restores the original.
func SetOpenKeyring(fn func(keyring.Config) (keyring.Keyring, error)) func() {
	original := openKeyring

	openKeyring = fn

	return func() { openKeyring = original }
}

func keyringConfig() keyring.Config {
	cfg := keyring.Config{
		ServiceName: keyringServiceName,
	}

	if os.Getenv(envKeyringBackend) == keyringBackendSystem {
		return cfg
	}

	// Configure file backend details so keyring.Open can fall through to
	// encrypted file storage when no native backend is available.
	home, err := os.UserHomeDir()
	if err == nil {
		cfg.FileDir = filepath.Join(home, ".aeries", "credentials")
	}

	cfg.FilePasswordFunc = func(prompt string) (string, error) {
		if password := os.Getenv(envKeyringPassword); password != "" {
			return password, nil
		}

		return keyring.TerminalPrompt(prompt)
	}

	if os.Getenv(envKeyringBackend) == keyringBackendFile {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return cfg
}

// credentialKey derives a stable keychain entry name from a base URL, so a
// district's certificate follows its endpoint rather than the CLI invocation.
func credentialKey(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err == nil && parsed.Host != "" {
		return "certificate:" + parsed.Host
	}

	return "certificate:" + strings.TrimRight(baseURL, "/")
}

// StoreCertificate saves a district API certificate in the OS keychain.
func StoreCertificate(baseURL, certificate string) error {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}

	err = ring.Set(keyring.Item{
		Key:   credentialKey(baseURL),
		Data:  []byte(certificate),
		Label: "Aeries API certificate for " + baseURL,
	})
	if err != nil {
		return fmt.Errorf("storing certificate: %w", err)
	}

	return nil
}

// LookupCertificate fetches the stored certificate for a base URL. A missing
// entry is not an error; the caller decides whether a certificate is required.
func LookupCertificate(baseURL string) (string, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return "", fmt.Errorf("opening keyring: %w", err)
	}

	item, err := ring.Get(credentialKey(baseURL))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("reading certificate: %w", err)
	}

	return string(item.Data), nil
}

// DeleteCertificate removes the stored certificate for a base URL.
func DeleteCertificate(baseURL string) error {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("opening keyring: %w", err)
	}

	err = ring.Remove(credentialKey(baseURL))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("removing certificate: %w", err)
	}

	return nil
}
