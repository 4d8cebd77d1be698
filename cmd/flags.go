package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grahamannett/identicon-take-home/service/identicon"
	"github.com/grahamannett/identicon-take-home/utils/optional"
	"github.com/grahamannett/identicon-take-home/utils/random"
)

// paletteFlags パレット関連の共通フラグ
type paletteFlags struct {
	noGradient bool
	baseIndex  int
	endIndex   int
	seed       uint64
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("num-colors", identicon.DefaultGeneratorConfig().NumColors, "number of palette colors")
	flags.BoolVar(&f.noGradient, "no-gradient", false, "pick distinct colors instead of a gradient")
	flags.IntVar(&f.baseIndex, "base-color-idx", 0, "index of the base color (negative counts from the end, random if unset)")
	flags.IntVar(&f.endIndex, "end-color-idx", 0, "index of the gradient end color (negative counts from the end, random if unset)")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for random color selection")
}

// generatorConfig フラグと読み込まれた設定からGeneratorConfigを作ります
func (f *paletteFlags) generatorConfig(cmd *cobra.Command) identicon.GeneratorConfig {
	base := optional.New(f.baseIndex, cmd.Flags().Changed("base-color-idx"))
	end := optional.New(f.endIndex, cmd.Flags().Changed("end-color-idx"))

	gc := provideGeneratorConfig(&c, base, end)
	if f.noGradient {
		gc.Gradient = false
	}
	return gc
}

// source 色選択用の乱数源
func (f *paletteFlags) source(cmd *cobra.Command) random.Source {
	if cmd.Flags().Changed("seed") {
		return random.NewSeeded(f.seed)
	}
	return random.New()
}
