package configs

import (
	"github.com/BurntSushi/toml"
)

// LoadTOML decodes a TOML file into data, leaving fields absent from the
// file untouched so callers can pre-fill defaults.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
