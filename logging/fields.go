package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceContextKey = "serviceContext"
	contextKey        = "context"
)

// ServiceContext ログに付与するサービス名とバージョン
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("service", name)
		enc.AddString("version", version)
		return nil
	}))
}

// ErrorReport エラーログの発生箇所
// callerが不明な場合は何も出力しません
func ErrorReport(caller zapcore.EntryCaller) zap.Field {
	if !caller.Defined {
		return zap.Skip()
	}

	function := caller.Function
	if len(function) == 0 {
		if fn := runtime.FuncForPC(caller.PC); fn != nil {
			function = fn.Name()
		}
	}
	location := zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("filePath", caller.File)
		enc.AddString("lineNumber", strconv.Itoa(caller.Line))
		enc.AddString("functionName", function)
		return nil
	})
	return zap.Object(contextKey, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		return enc.AddObject("reportLocation", location)
	}))
}
