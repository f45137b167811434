package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment fills Config from the environment variables named in
// `env` struct tags, falling back to `default` tags. Config is a flat set of
// sections, so there is no recursive walk; only the field kinds Config
// declares are supported: string, int and time.Duration.
func loadFromEnvironment(config *Config) error {
	root := reflect.ValueOf(config).Elem()
	rootType := root.Type()

	for i := 0; i < root.NumField(); i++ {
		if err := loadSection(root.Field(i), rootType.Field(i).Name); err != nil {
			return err
		}
	}

	return nil
}

func loadSection(section reflect.Value, sectionName string) error {
	t := section.Type()

	for i := 0; i < section.NumField(); i++ {
		tag := t.Field(i).Tag

		envName := tag.Get("env")
		if envName == "" {
			continue
		}

		raw := os.Getenv(envName)
		if raw == "" {
			raw = tag.Get("default")
		}
		if raw == "" {
			// Unset and no default; AUTH_TOKEN_SECRET stays empty on
			// purpose so auth can be disabled in development.
			continue
		}

		if err := assign(section.Field(i), raw); err != nil {
			return fmt.Errorf("%s.%s (%s): %w", sectionName, t.Field(i).Name, envName, err)
		}
	}

	return nil
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q", raw)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(int64(n))

	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}

	return nil
}
