package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "PDRAWINFO"

// Output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type config struct {
	Output    string
	LogLevel  string
	LogFormat string
	Color     bool
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("output", outputText)
	v.SetDefault("log.level", "warning")
	v.SetDefault("log.format", "text")
	v.SetDefault("color", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("pdrawinfo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/pdrawinfo")
	return v
}

// readConfig loads the config file, if any, and resolves every key.
// configFile overrides the search paths.
func readConfig(v *viper.Viper, configFile string) (config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("unable to read config: %w", err)
		}
	}

	cfg := config{
		Output:    strings.ToLower(v.GetString("output")),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Color:     v.GetBool("color"),
	}
	switch cfg.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return config{}, fmt.Errorf("unknown output format %q", cfg.Output)
	}
	return cfg, nil
}

func newLogger(cfg config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	switch cfg.LogFormat {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: !cfg.Color})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return l, nil
}
