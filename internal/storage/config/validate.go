package config

import (
	"errors"
	"fmt"
	"os"

	"vmm/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// dirExists is a validation rule requiring an existing directory.
func dirExists(value interface{}) error {
	path, _ := value.(string)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.New("must be an existing directory")
	}
	return nil
}

// fileExists is a validation rule requiring an existing regular file.
func fileExists(value interface{}) error {
	path, _ := value.(string)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errors.New("must be an existing file")
	}
	return nil
}

// ValidateForApply checks that every path an apply needs is configured and
// present on disk. It is called synchronously before any worker starts; a
// failure blocks the apply with nothing mutated.
func (c *Config) ValidateForApply() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.GamePath, validation.Required, validation.By(dirExists)),
		validation.Field(&c.CfgBinPath, validation.Required, validation.By(fileExists)),
		validation.Field(&c.ViolaPath, validation.Required, validation.By(fileExists)),
	)
	if err == nil {
		return nil
	}

	// Map field failures to the domain sentinels callers branch on.
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		if _, ok := fieldErrs["GamePath"]; ok {
			return fmt.Errorf("%w: %q", domain.ErrInvalidGame, c.GamePath)
		}
		if _, ok := fieldErrs["CfgBinPath"]; ok {
			return fmt.Errorf("%w: %q", domain.ErrInvalidCfgBin, c.CfgBinPath)
		}
		if _, ok := fieldErrs["ViolaPath"]; ok {
			return fmt.Errorf("%w: %q", domain.ErrInvalidViola, c.ViolaPath)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
}
