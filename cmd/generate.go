package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grahamannett/identicon-take-home/service/identicon"
	"github.com/grahamannett/identicon-take-home/utils/validator"
)

// generateCommand identicon画像生成コマンド
func generateCommand() *cobra.Command {
	var (
		pf          paletteFlags
		output      string
		noColor     bool
		noSymmetric bool
	)

	cmd := cobra.Command{
		Use:   "generate NAME",
		Short: "Generate an identicon image for NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			name := args[0]
			if err := validator.ValidateLabel(name); err != nil {
				logger.Warn("label is outside of the supported label space", zap.String("label", name), zap.Error(err))
			}

			gen, err := identicon.NewGenerator(pf.generatorConfig(cmd), pf.source(cmd))
			if err != nil {
				return err
			}

			wc := provideWriterConfig(&c)
			if noSymmetric {
				wc.Symmetric = false
			}
			w, err := identicon.NewWriter(wc, c.getFileStorage(), logger.Named("writer"))
			if err != nil {
				return err
			}

			colored := c.Identicon.Colored && !noColor
			if _, err := w.Generate(gen, name, output, colored); err != nil {
				return err
			}

			logger.Info("identicon generated",
				zap.String("label", name),
				zap.String("digest", gen.Hash(name)),
				zap.Bool("colored", colored),
				zap.Stringers("palette", gen.Colors()),
				zap.String("output", output),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	pf.register(&cmd)
	flags.StringVarP(&output, "output", "o", "", "output image path (format is chosen by extension, PNG by default)")
	flags.BoolVar(&noColor, "no-color", false, "render a black and white image")
	flags.Int("image-size", identicon.DefaultWriterConfig().ImageSize, "image width and height in pixels")
	flags.BoolVar(&noSymmetric, "no-symmetric", false, "do not mirror the left half onto the right half")
	flags.String("dir", "", "directory the output path is relative to")

	return &cmd
}
