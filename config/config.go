// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const Version = "v0.3.1"

const (
	configTwentyFourHourClock = "24hr_clock"
	configDarkTheme           = "dark_theme"
	configStopwatchFormat     = "stopwatch_format"
	configNotify              = "notify"
	configExpirySound         = "expiry_sound"
	configExpiryCmd           = "expiry_cmd"
)

var (
	configDir      = "tick"
	configFileName = "config.yml"
	dbFileName     = "tick.db"
	logFileName    = "tick.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var once sync.Once

// Config represents the program configuration derived from the config file
// and command-line arguments.
type Config struct {
	Stderr              io.Writer `json:"-"`
	Stdout              io.Writer `json:"-"`
	Stdin               io.Reader `json:"-"`
	PathToConfig        string    `json:"path_to_config"`
	PathToDB            string    `json:"path_to_db"`
	StopwatchFormat     string    `json:"stopwatch_format"`
	ExpirySound         string    `json:"expiry_sound"`
	ExpiryCmd           string    `json:"expiry_cmd"`
	Notify              bool      `json:"notify"`
	DarkTheme           bool      `json:"dark_theme"`
	TwentyFourHourClock bool      `json:"twenty_four_hour_clock"`
}

var cfg = &Config{}

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations
// from the XDG base directories.
func InitializePaths() {
	tickEnv := strings.TrimSpace(os.Getenv("TICK_ENV"))
	if tickEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", tickEnv)
		dbFileName = fmt.Sprintf("tick_%s.db", tickEnv)
		logFileName = fmt.Sprintf("tick_%s.log", tickEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// setDefaults sets the program's default configuration values.
func setDefaults() {
	viper.SetDefault(configTwentyFourHourClock, false)
	viper.SetDefault(configDarkTheme, true)
	viper.SetDefault(configStopwatchFormat, "hms")
	viper.SetDefault(configNotify, true)
	viper.SetDefault(configExpirySound, "")
	viper.SetDefault(configExpiryCmd, "")
}

// initConfig reads the config file, creating it with defaults on first run.
func initConfig() error {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("yaml")

	setDefaults()

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
		return err
	}

	return viper.WriteConfigAs(configFilePath)
}

// setConfig populates the config from the file and then applies
// command-line overrides.
func setConfig(ctx *cli.Context) {
	cfg.Stderr = os.Stderr
	cfg.Stdout = os.Stdout
	cfg.Stdin = os.Stdin

	cfg.PathToConfig = configFilePath
	cfg.PathToDB = dbFilePath

	cfg.TwentyFourHourClock = viper.GetBool(configTwentyFourHourClock)
	cfg.StopwatchFormat = viper.GetString(configStopwatchFormat)
	cfg.Notify = viper.GetBool(configNotify)
	cfg.ExpirySound = viper.GetString(configExpirySound)
	cfg.ExpiryCmd = viper.GetString(configExpiryCmd)

	if viper.IsSet(configDarkTheme) {
		cfg.DarkTheme = viper.GetBool(configDarkTheme)
	} else {
		cfg.DarkTheme = true
	}

	if ctx == nil {
		return
	}

	// command-line arguments override the configuration file
	if ctx.Bool("disable-notification") {
		cfg.Notify = false
	}

	if ctx.String("sound") != "" {
		if ctx.String("sound") == "off" {
			cfg.ExpirySound = ""
		} else {
			cfg.ExpirySound = ctx.String("sound")
		}
	}

	if ctx.String("expiry-cmd") != "" {
		cfg.ExpiryCmd = ctx.String("expiry-cmd")
	}

	if ctx.String("format") != "" {
		cfg.StopwatchFormat = ctx.String("format")
	}
}

// Get initializes and returns the program configuration. Initialization
// happens once no matter how many times it is called.
func Get(ctx *cli.Context) *Config {
	once.Do(func() {
		err := initConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setConfig(ctx)
	})

	return cfg
}
