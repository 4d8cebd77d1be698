package cmd

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/grahamannett/identicon-take-home/service/identicon"
	"github.com/grahamannett/identicon-take-home/utils/optional"
	"github.com/grahamannett/identicon-take-home/utils/storage"
	"github.com/grahamannett/identicon-take-home/utils/validator"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`

	// Identicon グリッド・パレット設定
	Identicon struct {
		// NumColors パレットの色数 (default: 4)
		NumColors int `mapstructure:"numColors" yaml:"numColors"`
		// Gradient グラデーションパレットを使うかどうか (default: true)
		Gradient bool `mapstructure:"gradient" yaml:"gradient"`
		// Colored 着色するかどうか。falseの場合は白黒 (default: true)
		Colored bool `mapstructure:"colored" yaml:"colored"`
	} `mapstructure:"identicon" yaml:"identicon"`

	// Image 画像出力設定
	Image struct {
		// Size 画像の一辺のピクセル数 (default: 256)
		Size int `mapstructure:"size" yaml:"size"`
		// Symmetric 左右対称にするかどうか (default: true)
		Symmetric bool `mapstructure:"symmetric" yaml:"symmetric"`
	} `mapstructure:"image" yaml:"image"`

	// Storage 出力先設定
	Storage struct {
		// Type ストレージタイプ (default: local)
		// local: ローカルディレクトリに保存
		// memory: メモリ上にのみ保存 (ドライラン用)
		Type string `mapstructure:"type" yaml:"type"`
		// Dir 出力先ディレクトリ。出力パスはこのディレクトリからの相対パスになります (default: カレントディレクトリ)
		Dir string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"storage" yaml:"storage"`
}

func setDefaults() {
	gc := identicon.DefaultGeneratorConfig()
	wc := identicon.DefaultWriterConfig()

	viper.SetDefault("dev", false)
	viper.SetDefault("identicon.numColors", gc.NumColors)
	viper.SetDefault("identicon.gradient", gc.Gradient)
	viper.SetDefault("identicon.colored", true)
	viper.SetDefault("image.size", wc.ImageSize)
	viper.SetDefault("image.symmetric", wc.Symmetric)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.dir", "")
}

// Validate 設定値を検証します
func (c Config) Validate() error {
	return vd.Errors{
		"identicon.numColors": vd.Validate(c.Identicon.NumColors, validator.NumColorsRule...),
		"image.size":          vd.Validate(c.Image.Size, validator.ImageSizeRule...),
		"storage.type":        vd.Validate(c.Storage.Type, vd.In("local", "memory")),
	}.Filter()
}

func (c Config) getFileStorage() storage.FileStorage {
	switch c.Storage.Type {
	case "memory":
		return storage.NewInMemoryFileStorage()
	default:
		return storage.NewLocalFileStorage(c.Storage.Dir)
	}
}

func provideGeneratorConfig(c *Config, base, end optional.Of[int]) identicon.GeneratorConfig {
	return identicon.GeneratorConfig{
		NumColors: c.Identicon.NumColors,
		Gradient:  c.Identicon.Gradient,
		BaseIndex: base,
		EndIndex:  end,
	}
}

func provideWriterConfig(c *Config) identicon.WriterConfig {
	return identicon.WriterConfig{
		ImageSize: c.Image.Size,
		Symmetric: c.Image.Symmetric,
	}
}
