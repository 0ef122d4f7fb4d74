package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen   string   `koanf:"listen"`
	Frontend Frontend `koanf:"frontend"`
	Database Database `koanf:"db"`
	Calc     Calc     `koanf:"calc"`
	Rates    Rates    `koanf:"rates"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Database struct {
	Path string `koanf:"path"`
}

// Calc selects the business-rule variants for the calculation engine.
type Calc struct {
	// BreakPolicy is the effective-hours rule set: "standard" or "legacy".
	BreakPolicy string `koanf:"breakpolicy"`
	// MissingDays is the missing-day counting window: "future" or "period".
	MissingDays string `koanf:"missingdays"`
	// MajorityRule applies the split-shift break tie-break after aggregation.
	MajorityRule bool `koanf:"majorityrule"`
}

type Rates struct {
	// Warehouse is the site whose pay tables apply. Lookups for any other
	// site return no rate.
	Warehouse string `koanf:"warehouse"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Database: Database{
			Path: "./suorite.db",
		},
		Calc: Calc{
			BreakPolicy:  "standard",
			MissingDays:  "future",
			MajorityRule: false,
		},
		Rates: Rates{
			Warehouse: "vantaa",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SUORITE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SUORITE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
