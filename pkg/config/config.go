// Package config loads session defaults and the demo account from the
// environment or an optional .lawe config file.
package config

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/lawe/pkg/entity"
)

// Config carries everything the wiring layer needs: the demo account
// the static authenticator vouches for, and the initial settings.
type Config struct {
	Account  Account
	Settings entity.Settings
}

// Account is the injected credential pair and the user it maps to.
type Account struct {
	Name     string
	Email    string
	Password string
}

// Load reads configuration, lowest precedence first: built-in defaults,
// an optional .lawe file (cwd, then home), then LAWE_* env vars.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("account.name", "John Doe")
	v.SetDefault("account.email", "user@example.com")
	v.SetDefault("account.password", "password")
	v.SetDefault("settings.notifications", true)
	v.SetDefault("settings.theme", "light")
	v.SetDefault("settings.language", "en")
	v.SetDefault("settings.timezone", "UTC")

	v.SetConfigName(".lawe") // .yaml is implicit
	v.SetEnvPrefix("LAWE")
	v.AutomaticEnv()

	if override := os.Getenv("LAWE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Account: Account{
			Name:     v.GetString("account.name"),
			Email:    v.GetString("account.email"),
			Password: v.GetString("account.password"),
		},
		Settings: entity.Settings{
			Notifications: v.GetBool("settings.notifications"),
			Theme:         v.GetString("settings.theme"),
			Language:      v.GetString("settings.language"),
			Timezone:      v.GetString("settings.timezone"),
		},
	}, nil
}
