package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/environment"

	"go.uber.org/config"
)

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name     string         `yaml:"name"`
	API      APIConfig      `yaml:"api"`
	Timings  TimingsConfig  `yaml:"timings"`
	Messages MessagesConfig `yaml:"messages"`
}

// APIConfig configures the client of the activities backend
type APIConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// TimingsConfig stores the delays of deferred UI updates
type TimingsConfig struct {
	LoginMessageDismiss  time.Duration `yaml:"loginMessageDismiss"`
	StatusMessageDismiss time.Duration `yaml:"statusMessageDismiss"`
	SettleTimeout        time.Duration `yaml:"settleTimeout"`
}

// MessagesConfig stores the fallback texts shown to the user
type MessagesConfig struct {
	NotLoggedIn      string `yaml:"notLoggedIn"`
	LoggedInAs       string `yaml:"loggedInAs"`
	LoginFailed      string `yaml:"loginFailed"`
	LoginError       string `yaml:"loginError"`
	RequestFailed    string `yaml:"requestFailed"`
	SignupError      string `yaml:"signupError"`
	UnregisterError  string `yaml:"unregisterError"`
	ActivitiesError  string `yaml:"activitiesError"`
	NoParticipants   string `yaml:"noParticipants"`
	InvalidLoginForm string `yaml:"invalidLoginForm"`
	InvalidSignup    string `yaml:"invalidSignup"`
}

// DefaultAppConfig returns the configuration used when no config file overrides it
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Name: "Mergington High School Activities",
		API: APIConfig{
			Timeout: 10 * time.Second,
		},
		Timings: TimingsConfig{
			LoginMessageDismiss:  1500 * time.Millisecond,
			StatusMessageDismiss: 5 * time.Second,
			SettleTimeout:        5 * time.Second,
		},
		Messages: MessagesConfig{
			NotLoggedIn:      "Not Logged In",
			LoggedInAs:       "Logged in as: %s",
			LoginFailed:      "Login failed",
			LoginError:       "Login error. Please try again.",
			RequestFailed:    "An error occurred",
			SignupError:      "Failed to sign up. Please try again.",
			UnregisterError:  "Failed to unregister. Please try again.",
			ActivitiesError:  "Failed to load activities. Please try again later.",
			NoParticipants:   "No participants yet",
			InvalidLoginForm: "Please enter a username and password.",
			InvalidSignup:    "Please enter a valid email and choose an activity.",
		},
	}
}

// NewAppConfig loads the project config from the config files based on the environment.
// Files that do not exist are skipped.
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.GetOrDefault(environment.ConfigDir, ".")

	configFiles := []string{"base.yaml"}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, "production.yaml")
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, "development.yaml")
	}

	options := []config.YAMLOption{config.Static(DefaultAppConfig())}
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		options = append(options, config.File(path))
	}

	configProvider, err := config.NewYAML(options...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	return &cfg, nil
}
