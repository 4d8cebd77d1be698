package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type driverConfig struct {
	ServiceName    string
	ServiceVersion string
}

// core serviceContextとエラー発生箇所を付与するzapcore.Core
type core struct {
	zapcore.Core
	config driverConfig
}

func wrapCore(c driverConfig) zap.Option {
	return zap.WrapCore(func(zc zapcore.Core) zapcore.Core {
		return &core{Core: zc, config: c}
	})
}

// With adds structured context to the Core.
func (c *core) With(fields []zap.Field) zapcore.Core {
	return &core{
		Core:   c.Core.With(fields),
		config: c.config,
	}
}

// Check determines whether the supplied Entry should be logged.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write serializes the Entry and any Fields supplied at the log site and
// writes them to their destination.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	fields = c.withServiceContext(c.config.ServiceName, c.config.ServiceVersion, fields)
	if zapcore.ErrorLevel.Enabled(ent.Level) {
		fields = c.withErrorReport(ent, fields)
	}
	return c.Core.Write(ent, fields)
}

// Sync flushes buffered logs (if any).
func (c *core) Sync() error {
	return c.Core.Sync()
}

func (c *core) withServiceContext(name, version string, fields []zapcore.Field) []zapcore.Field {
	for i := range fields {
		if fields[i].Key == serviceContextKey {
			return fields
		}
	}
	return append(fields, ServiceContext(name, version))
}

func (c *core) withErrorReport(ent zapcore.Entry, fields []zapcore.Field) []zapcore.Field {
	for i := range fields {
		if fields[i].Key == contextKey {
			return fields
		}
	}
	return append(fields, ErrorReport(ent.Caller))
}
