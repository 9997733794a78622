package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemd/internal/game"
)

// Config is the complete server configuration
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Table  *TableSettings  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings contains the table stakes and timing
type TableSettings struct {
	SmallBlind      int `hcl:"small_blind,optional"`
	BigBlind        int `hcl:"big_blind,optional"`
	MinBuyIn        int `hcl:"min_buy_in,optional"`
	MaxBuyIn        int `hcl:"max_buy_in,optional"`
	ShowdownDelayMS int `hcl:"showdown_delay_ms,optional"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:  "localhost:8080",
			LogLevel: "info",
		},
		Table: &TableSettings{
			SmallBlind:      10,
			BigBlind:        20,
			MinBuyIn:        100,
			MaxBuyIn:        1_000_000,
			ShowdownDelayMS: 2500,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist. Missing fields take their
// default values.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	def := DefaultConfig()
	if config.Server == nil {
		config.Server = def.Server
	}
	if config.Table == nil {
		config.Table = def.Table
	}
	if config.Server.Address == "" {
		config.Server.Address = def.Server.Address
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = def.Server.LogLevel
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = def.Table.SmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = def.Table.BigBlind
	}
	if config.Table.MinBuyIn == 0 {
		config.Table.MinBuyIn = def.Table.MinBuyIn
	}
	if config.Table.MaxBuyIn == 0 {
		config.Table.MaxBuyIn = def.Table.MaxBuyIn
	}
	if config.Table.ShowdownDelayMS == 0 {
		config.Table.ShowdownDelayMS = def.Table.ShowdownDelayMS
	}

	return &config, nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if c.Table.MinBuyIn < c.Table.BigBlind {
		return fmt.Errorf("minimum buy-in must cover the big blind")
	}
	if c.Table.MinBuyIn >= c.Table.MaxBuyIn {
		return fmt.Errorf("buy-in minimum must be less than maximum")
	}
	return nil
}

// GameConfig converts the table settings to the engine's config
func (c *Config) GameConfig() game.Config {
	return game.Config{
		SmallBlind: c.Table.SmallBlind,
		BigBlind:   c.Table.BigBlind,
		MinBuyIn:   c.Table.MinBuyIn,
		MaxBuyIn:   c.Table.MaxBuyIn,
	}
}

// ShowdownDelay returns how long a settled hand stays on display before
// the table returns to idle
func (c *Config) ShowdownDelay() time.Duration {
	return time.Duration(c.Table.ShowdownDelayMS) * time.Millisecond
}
