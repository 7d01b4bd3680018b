// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package log

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pbinitiative/zenvedtak/internal/profile"
	"go.opentelemetry.io/otel/trace"
)

// Init configures the process wide hclog default logger for the current profile.
// Components keep using hclog.Default().Named(...) so they pick this configuration up.
func Init() {
	hclog.SetDefault(hclog.New(&hclog.LoggerOptions{
		Name:            "zenvedtak",
		Level:           profile.Current.LogLevel(),
		Output:          os.Stderr,
		JSONFormat:      profile.Current.JSONLogs(),
		IncludeLocation: profile.Current != profile.PROD,
	}))
}

func Info(format string, args ...any) {
	hclog.Default().Info(fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) {
	hclog.Default().Error(fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	hclog.Default().Info(fmt.Sprintf(format, args...), traceFields(ctx)...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	hclog.Default().Error(fmt.Sprintf(format, args...), traceFields(ctx)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	hclog.Default().Debug(fmt.Sprintf(format, args...), traceFields(ctx)...)
}

// traceFields correlates log lines with the active span
func traceFields(ctx context.Context) []any {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []any{"traceId", sc.TraceID().String(), "spanId", sc.SpanID().String()}
}
