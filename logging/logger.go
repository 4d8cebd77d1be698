package logging

import (
	"go.uber.org/zap"
)

// CreateNewLogger JSON形式のロガーを生成します
func CreateNewLogger(serviceName, serviceVersion string) (*zap.Logger, error) {
	return prodConfig.Build(wrapCore(driverConfig{ServiceName: serviceName, ServiceVersion: serviceVersion}))
}

// CreateDevLogger 開発モード用のコンソールロガーを生成します
func CreateDevLogger() (*zap.Logger, error) {
	return devConfig.Build()
}

// NewLogger devに応じてロガーを生成します
func NewLogger(dev bool, serviceName, serviceVersion string) (*zap.Logger, error) {
	if dev {
		return CreateDevLogger()
	}
	return CreateNewLogger(serviceName, serviceVersion)
}
