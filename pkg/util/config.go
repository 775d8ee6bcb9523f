package util

import (
	"github.com/mitchellh/mapstructure"
)

// ConfigToStruct populates a settings struct from the opaque map that backend
// config sections carry. Unknown keys are ignored, missing keys keep their
// zero value.
func ConfigToStruct[T any](rawConfig map[string]any) (*T, error) {
	config := new(T)
	if err := mapstructure.Decode(rawConfig, config); err != nil {
		return nil, err
	}
	return config, nil
}
