package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/indigo-web/reqline/config"
	"github.com/indigo-web/utils/strcomp"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Format selects how parsed requests are printed.
type Format uint8

const (
	Text Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}

	return "text"
}

// UnmarshalText implements encoding.TextUnmarshaler, so the format may be set
// from flags, environment and config files alike.
func (f *Format) UnmarshalText(text []byte) error {
	switch str := string(text); {
	case strcomp.EqualFold(str, "text"):
		*f = Text
	case strcomp.EqualFold(str, "json"):
		*f = JSON
	default:
		return fmt.Errorf("unknown format: %q", str)
	}

	return nil
}

// Options are the knobs of the tool. Parser is handed to http.NewParser as is.
type Options struct {
	Format Format        `mapstructure:"format"`
	Decode bool          `mapstructure:"decode"`
	Parser config.Config `mapstructure:"parser"`
}

const envPrefix = "REQLINE"

// loadOptions merges defaults, the optional config file, REQLINE_* environment
// variables and flags, in the order of increasing priority.
func loadOptions(args []string) (opts Options, files []string, err error) {
	defaults := config.Default()
	fs := pflag.NewFlagSet("reqline", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.StringP("config", "c", "", "path to a config file")
	fs.StringP("format", "f", Text.String(), "output format: text or json")
	fs.BoolP("decode", "d", false, "print percent-decoded path and query as well")
	fs.Bool("strict", defaults.URI.Strict, "require request targets to conform to the URI grammar")
	fs.Int("max-length", defaults.RequestLine.MaxLength, "maximal request line length")
	fs.Uint16("default-port", defaults.URI.DefaultPort, "port assumed when the target has none")

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			err = fmt.Errorf("%w\nusage: reqline [flags] [file...]\n%s", err, fs.FlagUsages())
		}

		return opts, nil, err
	}

	v := viper.New()
	v.SetDefault("format", Text.String())
	v.SetDefault("decode", false)
	v.SetDefault("parser.request_line.max_length", defaults.RequestLine.MaxLength)
	v.SetDefault("parser.uri.default_port", defaults.URI.DefaultPort)
	v.SetDefault("parser.uri.strict", defaults.URI.Strict)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"format":                         "format",
		"decode":                         "decode",
		"parser.uri.strict":              "strict",
		"parser.request_line.max_length": "max-length",
		"parser.uri.default_port":        "default-port",
	} {
		if err = v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return opts, nil, err
		}
	}

	if len(*configFile) > 0 {
		v.SetConfigFile(*configFile)
		if err = v.ReadInConfig(); err != nil {
			return opts, nil, err
		}
	}

	err = v.Unmarshal(
		&opts,
		viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()),
		func(dc *mapstructure.DecoderConfig) {
			dc.ErrorUnused = true
		},
	)

	return opts, fs.Args(), err
}
