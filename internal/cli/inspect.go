package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/showcase"
)

type inspection struct {
	Hex      domain.Hex `json:"hex"`
	RGB      domain.RGB `json:"rgb"`
	HSL      domain.HSL `json:"hsl"`
	Light    bool       `json:"light"`
	Text     domain.Hex `json:"text"`
	Contrast float64    `json:"contrast"`
}

func inspectColor(input string) (inspection, error) {
	rgb, err := colorspace.DecodeHex(strings.TrimSpace(input))
	if err != nil {
		return inspection{}, err
	}
	hex := colorspace.EncodeHex(rgb)
	text := showcase.TextColor(hex)
	ratio, err := showcase.ContrastRatio(text, hex)
	if err != nil {
		return inspection{}, err
	}
	return inspection{
		Hex:      hex,
		RGB:      rgb,
		HSL:      colorspace.RGBToHSL(rgb),
		Light:    showcase.IsLight(hex),
		Text:     text,
		Contrast: ratio,
	}, nil
}

func inspectCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Show the RGB and HSL values of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := inspectColor(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case formatJSON:
				return writeJSON(out, in)
			case formatPretty, "":
				printInspection(out, in)
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func printInspection(w io.Writer, in inspection) {
	r := newRenderer(w)
	tone := "dark"
	if in.Light {
		tone = "light"
	}
	fmt.Fprintf(w, "Hex:   %s\n", swatch(r, in.Hex, string(in.Hex)))
	fmt.Fprintf(w, "RGB:   %d, %d, %d\n", in.RGB.R, in.RGB.G, in.RGB.B)
	fmt.Fprintf(w, "HSL:   %.1f, %.1f%%, %.1f%%\n", in.HSL.H, in.HSL.S, in.HSL.L)
	fmt.Fprintf(w, "Tone:  %s (text %s, %.2f:1)\n", tone, in.Text, in.Contrast)
}
