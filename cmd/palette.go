package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/grahamannett/identicon-take-home/service/identicon"
	uidenticon "github.com/grahamannett/identicon-take-home/utils/identicon"
)

// paletteCommand パレット確認コマンド
func paletteCommand() *cobra.Command {
	var (
		pf     paletteFlags
		output string
		tile   int
	)

	cmd := cobra.Command{
		Use:   "palette",
		Short: "Print the palette built from the given options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := identicon.NewGenerator(pf.generatorConfig(cmd), pf.source(cmd))
			if err != nil {
				return err
			}
			p := gen.Palette()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "base:   %s\n", p.Base.Hex())
			if p.Gradient {
				_, _ = fmt.Fprintf(out, "end:    %s\n", p.End.Hex())
			}
			_, _ = fmt.Fprintf(out, "colors: %s\n", strings.Join(lo.Map(p.Colors, func(col uidenticon.Color, _ int) string {
				return col.Hex()
			}), " "))

			if output == "" {
				return nil
			}

			logger, err := getLogger()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			w, err := identicon.NewWriter(provideWriterConfig(&c), c.getFileStorage(), logger.Named("writer"))
			if err != nil {
				return err
			}
			_, err = w.WriteSwatch(p, tile, output)
			return err
		},
	}

	pf.register(&cmd)
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "write a swatch image of the palette to this path")
	flags.IntVar(&tile, "tile", 64, "swatch tile size in pixels")
	flags.String("dir", "", "directory the output path is relative to")

	return &cmd
}
