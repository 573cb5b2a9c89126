package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/aeries-io/aeries/pkg/aeriesclient"
	"github.com/itchyny/gojq"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrBaseURLNotConfigured     = errors.New("no API base URL configured, use --api or 'aeries config set api <url>'")
	ErrCertificateNotConfigured = errors.New("no API certificate configured, use 'aeries config set-certificate'")
	ErrSchoolCodeRequired       = errors.New("school code is required")
	ErrStudentIDRequired        = errors.New("student ID is required")
	ErrConfigKeyRequired        = errors.New("config key is required")
	ErrUnknownConfigKey         = errors.New("unknown config key")
	ErrNoConfigPath             = errors.New("could not determine config file path")
	ErrInvalidQueryPair         = errors.New("query parameter must be key=value")
)

// CreateClient builds an Aeries API client from the effective configuration:
// flags first, then config file, then stored credentials from the keychain.
func CreateClient() (aeries.Client, error) {
	baseURL := viper.GetString("api")
	if baseURL == "" {
		return nil, ErrBaseURLNotConfigured
	}

	certificate := viper.GetString("certificate")
	if certificate == "" {
		stored, err := LookupCertificate(baseURL)
		if err != nil {
			return nil, err
		}

		certificate = stored
	}

	if certificate == "" {
		return nil, ErrCertificateNotConfigured
	}

	config := &aeries.Config{
		BaseURL:       baseURL,
		Certificate:   certificate,
		SkipTLSVerify: viper.GetBool("skip-ssl-validation"),
		Debug:         viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = stderrLogger{}
	}

	client, err := aeriesclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// stderrLogger writes debug output to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	var builder strings.Builder

	builder.WriteString(level)
	builder.WriteString(" ")
	builder.WriteString(msg)

	for key, value := range fields {
		fmt.Fprintf(&builder, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr, builder.String())
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// StandardJSONRenderer creates a standard JSON encoder. When a --jq expression
// is set, the data is filtered through it before encoding.
func StandardJSONRenderer[T any](data T) error {
	filtered, err := applyJQ(data, viper.GetString("jq"))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err = encoder.Encode(filtered)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// applyJQ runs a jq expression over data. The expression operates on the
// plain-JSON form of the value, so struct field names match the API's JSON.
func applyJQ(data any, expression string) (any, error) {
	if expression == "" {
		return data, nil
	}

	// Zsh escapes ! to \! even in single quotes, breaking operators like !=.
	expression = strings.ReplaceAll(expression, `\!`, `!`)

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data for jq: %w", err)
	}

	var plain any

	err = json.Unmarshal(encoded, &plain)
	if err != nil {
		return nil, fmt.Errorf("decoding data for jq: %w", err)
	}

	iter := query.Run(plain)

	var results []any

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if jqErr, ok := value.(error); ok {
			return nil, fmt.Errorf("jq filter error: %w", jqErr)
		}

		results = append(results, value)
	}

	if len(results) == 1 {
		return results[0], nil
	}

	return results, nil
}
