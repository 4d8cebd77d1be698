package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grahamannett/identicon-take-home/service/identicon"
	"github.com/grahamannett/identicon-take-home/utils/validator"
)

// batchCommand 複数ラベルの一括生成コマンド
func batchCommand() *cobra.Command {
	var (
		pf          paletteFlags
		ext         string
		noColor     bool
		noSymmetric bool
	)

	cmd := cobra.Command{
		Use:   "batch NAME...",
		Short: "Generate identicon images for multiple names, one after another, sharing one palette",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			for _, name := range args {
				if err := validator.ValidateLabel(name); err != nil {
					logger.Warn("label is outside of the supported label space", zap.String("label", name), zap.Error(err))
				}
				if filepath.Base(name) != name {
					return fmt.Errorf("name %q cannot be used as a file name", name)
				}
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

			key := func(label string) string { return label + "." + ext }
			return w.GenerateAll(cmd.Context(), gen, args, key, c.Identicon.Colored && !noColor)
		},
	}

	pf.register(&cmd)
	flags := cmd.Flags()
	flags.StringVar(&ext, "ext", "png", "image file extension (png, jpg, gif, bmp or tiff)")
	flags.BoolVar(&noColor, "no-color", false, "render black and white images")
	flags.Int("image-size", identicon.DefaultWriterConfig().ImageSize, "image width and height in pixels")
	flags.BoolVar(&noSymmetric, "no-symmetric", false, "do not mirror the left half onto the right half")
	flags.String("dir", "", "directory the images are written to")

	return &cmd
}
