// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

type ProfileType string

var Current = DEV // dev profile as default

const (
	DEV  ProfileType = "DEV"
	TEST ProfileType = "TEST"
	PROD ProfileType = "PROD"
)

func InitProfile() {
	Current = Parse(os.Getenv("PROFILE"))
	fmt.Printf("Current profile: %s\n", Current)
}

// Parse falls back to DEV for unknown values
func Parse(s string) ProfileType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEST":
		return TEST
	case "PROD":
		return PROD
	}
	return DEV
}

// LogLevel is the default log level of the profile, LOG_LEVEL overrides it
func (p ProfileType) LogLevel() hclog.Level {
	if lvl := hclog.LevelFromString(os.Getenv("LOG_LEVEL")); lvl != hclog.NoLevel {
		return lvl
	}
	switch p {
	case PROD:
		return hclog.Info
	case TEST:
		return hclog.Warn
	}
	return hclog.Debug
}

// JSONLogs is enabled in production where logs are shipped to a collector
func (p ProfileType) JSONLogs() bool {
	return p == PROD
}
