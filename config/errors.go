package config

import "errors"

var errInitFailed = errors.New(
	"unable to initialise tick settings from the configuration file",
)
