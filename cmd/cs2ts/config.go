// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/petar-djukic/cs2ts/pkg/transpiler"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// symbolOverride is one entry of the overrides list in the config file.
// Symbol signatures contain dots, so they are values rather than map keys.
type symbolOverride struct {
	Symbol     string `mapstructure:"symbol"`
	ScriptName string `mapstructure:"scriptName"`
	InlineCode string `mapstructure:"inlineCode"`
}

// operatorName maps a user-defined operator method to a function name.
type operatorName struct {
	Method string `mapstructure:"method"`
	Name   string `mapstructure:"name"`
}

// loadConfig reads the config file. An explicit path must exist; the default
// .cs2ts.yaml is optional.
func loadConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(".cs2ts")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// transpilerConfig builds the library config from flags, environment and
// config file.
func transpilerConfig() (transpiler.Config, error) {
	cfg := transpiler.Config{
		SourceDir:        viper.GetString("source"),
		OutputDir:        viper.GetString("output"),
		References:       viper.GetStringSlice("reference"),
		AssemblyName:     viper.GetString("assembly-name"),
		NoBuiltin:        viper.GetBool("no-builtin"),
		FieldRenameRule:  viper.GetString("field-rename-rule"),
		Concurrency:      viper.GetInt("concurrency"),
		WarningsAsErrors: viper.GetBool("warnings-as-errors"),
		SuppressedCodes:  viper.GetStringSlice("suppress"),
		Indent:           viper.GetString("indent"),
	}

	var overrides []symbolOverride
	if err := viper.UnmarshalKey("overrides", &overrides); err != nil {
		return cfg, fmt.Errorf("reading overrides: %w", err)
	}
	for _, o := range overrides {
		if o.Symbol == "" {
			return cfg, fmt.Errorf("override without symbol")
		}
		if o.ScriptName != "" {
			if cfg.ScriptNameOverrides == nil {
				cfg.ScriptNameOverrides = make(map[string]string)
			}
			cfg.ScriptNameOverrides[o.Symbol] = o.ScriptName
		}
		if o.InlineCode != "" {
			if cfg.InlineCodeOverrides == nil {
				cfg.InlineCodeOverrides = make(map[string]string)
			}
			cfg.InlineCodeOverrides[o.Symbol] = o.InlineCode
		}
	}

	var operators []operatorName
	if err := viper.UnmarshalKey("operators", &operators); err != nil {
		return cfg, fmt.Errorf("reading operators: %w", err)
	}
	for _, op := range operators {
		if cfg.OperatorNames == nil {
			cfg.OperatorNames = make(map[string]string)
		}
		cfg.OperatorNames[op.Method] = op.Name
	}
	return cfg, nil
}
