package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aeries-io/aeries/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration persisted to ~/.aeries/config.yml.
// The API certificate is never written here; it lives in the OS keychain.
type Config struct {
	API               string `json:"api,omitempty"       yaml:"api,omitempty"`
	Output            string `json:"output,omitempty"    yaml:"output,omitempty"`
	SkipSSLValidation bool   `json:"skip_ssl_validation" yaml:"skip_ssl_validation"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Aeries CLI configuration including the API endpoint and stored credentials",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetCertificateCommand())
	cmd.AddCommand(newConfigDeleteCertificateCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(config)
			case OutputFormatYAML:
				return StandardYAMLRenderer(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api", config.API)
				_ = table.Append("output", config.Output)
				_ = table.Append("skip_ssl_validation", strconv.FormatBool(config.SkipSSLValidation))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (api, output, skip_ssl_validation)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(args[0], "")
		},
	}
}

func setConfigValue(key, value string) error {
	config := loadConfig()

	switch key {
	case "api":
		config.API = value
	case "output":
		config.Output = value
	case "skip_ssl_validation":
		enabled, err := strconv.ParseBool(value)
		if err != nil && value != "" {
			return fmt.Errorf("parsing %q: %w", value, err)
		}

		config.SkipSSLValidation = enabled
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return saveConfig(config)
}

func newConfigSetCertificateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-certificate",
		Short: "Store the API certificate in the OS keychain",
		Long: `Store the district's Aeries API certificate securely in the OS keychain.

The certificate is read from the terminal without echoing so it never lands in
shell history. The base URL it is stored for comes from --api or the config
file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := viper.GetString("api")
			if baseURL == "" {
				return ErrBaseURLNotConfigured
			}

			fmt.Fprintf(os.Stderr, "Certificate for %s: ", baseURL)

			certificate, err := term.ReadPassword(int(os.Stdin.Fd()))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading certificate: %w", err)
			}

			err = StoreCertificate(baseURL, string(certificate))
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Certificate stored")

			return nil
		},
	}
}

func newConfigDeleteCertificateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-certificate",
		Short: "Remove the stored API certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := viper.GetString("api")
			if baseURL == "" {
				return ErrBaseURLNotConfigured
			}

			err := DeleteCertificate(baseURL)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Certificate removed")

			return nil
		},
	}
}

func configFilePath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".aeries", "config.yml")
}

func loadConfig() *Config {
	config := &Config{Output: "table"}

	path := configFilePath()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveConfig(config *Config) error {
	path := configFilePath()
	if path == "" {
		return ErrNoConfigPath
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
