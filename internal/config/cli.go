// Package config holds the command line surface of the keybd binary.
package config

import "github.com/Alia5/keybd/internal/cmd"

// Log configures the process logger.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"KEYBD_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"KEYBD_LOG_FILE"`
	RawFile string `help:"Write raw uinput frames to this file" env:"KEYBD_LOG_RAW_FILE"`
}

// CLI is the root kong model.
type CLI struct {
	ConfigFile string `name:"config" help:"Path to a configuration file (json, yaml or toml)" env:"KEYBD_CONFIG" type:"path"`
	Log        Log    `embed:"" prefix:"log."`

	Press  cmd.Press         `cmd:"" help:"Simulate a key combination"`
	Keys   cmd.Keys          `cmd:"" help:"List supported keys and their native codes"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
