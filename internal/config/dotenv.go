// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their value, so real environment
// variables always win over the file.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s file: %w", path, err)
	}

	return nil
}
