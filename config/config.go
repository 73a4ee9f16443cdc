package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByteMirror/notesappend/log"
)

const ConfigFileName = "config.json"

// HomeEnv overrides the configuration directory when set.
const HomeEnv = "NOTESAPPEND_HOME"

const DefaultInterpreter = "osascript"

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".notesappend"), nil
}

// Config represents the application configuration
type Config struct {
	// Interpreter is the program that runs the append scripts.
	Interpreter string `json:"interpreter"`
	// ScriptDir is the directory holding the append scripts. Empty means the
	// scripts directory next to the executable.
	ScriptDir string `json:"script_dir"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Interpreter: DefaultInterpreter,
		ScriptDir:   "",
	}
}

// ResolvedScriptDir returns ScriptDir, falling back to <executable dir>/scripts.
func (c *Config) ResolvedScriptDir() string {
	if c.ScriptDir != "" {
		return c.ScriptDir
	}
	exe, err := os.Executable()
	if err != nil {
		log.WarningLog.Printf("failed to locate executable: %v", err)
		return "scripts"
	}
	return filepath.Join(filepath.Dir(exe), "scripts")
}

// LoadConfig loads the configuration from disk. If it cannot be done, we return the default configuration.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if config.Interpreter == "" {
		config.Interpreter = DefaultInterpreter
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomicWriteFile(configPath, data, 0644)
}
