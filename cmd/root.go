package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grahamannett/identicon-take-home/logging"
)

var (
	Version  = "UNKNOWN"
	Revision = "UNKNOWN"
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// configFlags フラグ名と設定キーの対応
// 実行されるコマンドが持つフラグのみがバインドされます
var configFlags = map[string]string{
	"dev":        "dev",
	"num-colors": "identicon.numColors",
	"image-size": "image.size",
	"dir":        "storage.dir",
}

// rootCommand ルートコマンド。サブコマンドを束ねるだけで、単体では使用しない
func rootCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:          "identicon",
		Short:        "Generate identicon images from labels",
		SilenceUsage: true,
		// 全コマンド共通の前処理
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")
	flags.Bool("dev", false, "development mode")

	cmd.AddCommand(
		generateCommand(),
		batchCommand(),
		paletteCommand(),
		confCommand(),
		versionCommand(),
	)

	return &cmd
}

// Execute ルートコマンドを実行します
func Execute() error {
	return rootCommand().Execute()
}

func initConfig(cmd *cobra.Command) error {
	viper.Reset()
	setDefaults()

	for name, key := range configFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			bindPFlag(key, f)
		}
	}

	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("IDENTICON")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c = Config{}
	if err := viper.Unmarshal(&c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getLogger() (*zap.Logger, error) {
	return logging.NewLogger(c.DevMode, "identicon", fmt.Sprintf("%s.%s", Version, Revision))
}

func bindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
