// Package config provides functionality for managing configuration options
// for the storefront using command-line flags, an optional JSON file, and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Duration is a time.Duration that accepts both "2s"-style strings and
// raw nanosecond numbers in the JSON config file, and duration strings
// from flags and the environment.
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
	return nil
}

// UnmarshalText parses a duration string from the environment.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// String implements flag.Value.
func (d *Duration) String() string {
	return time.Duration(*d).String()
}

// Set implements flag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Options holds the configuration values for the storefront.
type Options struct {
	// ListenAddr defines the server's listening address (ip:port).
	ListenAddr string `json:"listen_addr" env:"LISTEN_ADDR"`

	// APIBaseURL is the base URL of the external travel API
	// (without the /api suffix).
	APIBaseURL string `json:"api_base_url" env:"API_BASE_URL"`

	// SessionSecret signs the session cookie.
	SessionSecret string `json:"session_secret" env:"SESSION_SECRET"`

	// CSRFSecret keys the CSRF token generator. Must be 32 bytes.
	CSRFSecret string `json:"csrf_secret" env:"CSRF_SECRET"`

	// PaymentDelay is the simulated card-processing delay.
	PaymentDelay Duration `json:"payment_delay" env:"PAYMENT_DELAY"`

	// Config is the path to the config file.
	Config string `json:"-" env:"CONFIG"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.ListenAddr, "a", "localhost:3000", "run on ip:port server")
	flag.StringVar(&options.APIBaseURL, "api", "http://localhost:5000", "travel API base URL")
	flag.StringVar(&options.SessionSecret, "session-secret", "", "session cookie signing key")
	flag.StringVar(&options.CSRFSecret, "csrf-secret", "", "CSRF signing key (32 bytes)")
	options.PaymentDelay = Duration(2 * time.Second)
	flag.Var(&options.PaymentDelay, "payment-delay", "simulated payment processing delay")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional JSON config file, and
// environment variables (highest precedence) to set configuration values.
// It returns a pointer to the Options struct containing the parsed
// configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	return options
}
