// Package config handles application configuration loading and management.
//
// Configuration is stored in ~/.notesappend/config.json and names the script
// interpreter and the directory holding the append scripts.
package config
