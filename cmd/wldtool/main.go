// Command wldtool inspects and manipulates Terraria-format WLD world saves.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/p0lyh3dron/wldgo"
)

func main() {
	root := &cobra.Command{
		Use:   "wldtool",
		Short: "Inspect and manipulate Terraria WLD world saves",
	}

	root.AddCommand(infoCmd(), copyCmd(), newCmd(), dumpPNGCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *wld.Logger {
	if verbose {
		return wld.NewLogger(os.Stderr)
	}
	return wld.NewLogger(nil)
}

func infoCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "info <world.wld>",
		Short: "Print a summary of a world's header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wld.Open(args[0], wld.WithLogger(newLogger(verbose)))
			if err != nil {
				return err
			}
			defer w.Close()

			h := w.Header
			fmt.Printf("Name:        %s\n", h.Name)
			fmt.Printf("Seed:        %s\n", h.Seed)
			fmt.Printf("Version:     %d\n", h.Version)
			fmt.Printf("Size:        %dx%d\n", h.Width, h.Height)
			fmt.Printf("Spawn:       (%d, %d)\n", h.SpawnX, h.SpawnY)
			fmt.Printf("GameMode:    %d (expert=%v master=%v journey=%v)\n",
				h.GameMode, h.IsExpert(), h.IsMaster(), h.IsJourney())
			fmt.Printf("Hardmode:    %v\n", h.Hardmode)
			fmt.Printf("Chests:      %d\n", len(w.Chests))
			fmt.Printf("Signs:       %d\n", len(w.Signs))
			fmt.Printf("NPCs:        %d\n", len(w.NPCs))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse diagnostics to stderr")
	return cmd
}

func copyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <src.wld> <dst.wld>",
		Short: "Round-trip a world through the codec and write it back out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Prefix = fmt.Sprintf("Copying %s -> %s... ", args[0], args[1])
			s.Start()
			defer s.Stop()

			w, err := wld.Open(args[0])
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Write(args[1])
		},
	}
	return cmd
}

func newCmd() *cobra.Command {
	var width, height int
	var name, seed string
	cmd := &cobra.Command{
		Use:   "new <dst.wld>",
		Short: "Create a new, mostly-empty world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wld.New(int32(width), int32(height), name, seed,
				wld.WithGenerator(&wld.DefaultGenerator{}))
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Write(args[0])
		},
	}
	cmd.Flags().IntVar(&width, "width", 4200, "world width in tiles")
	cmd.Flags().IntVar(&height, "height", 1200, "world height in tiles")
	cmd.Flags().StringVar(&name, "name", "New World", "world name")
	cmd.Flags().StringVar(&seed, "seed", "", "world seed (numeric, or a recognized seed-mode phrase)")
	return cmd
}

func dumpPNGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-png <world.wld> <out.png>",
		Short: "Render a throwaway preview of the tile grid as a flat-color PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wld.Open(args[0])
			if err != nil {
				return err
			}
			defer w.Close()

			img := image.NewRGBA(image.Rect(0, 0, int(w.Tiles.Width), int(w.Tiles.Height)))
			for x := int32(0); x < w.Tiles.Width; x++ {
				for y := int32(0); y < w.Tiles.Height; y++ {
					img.Set(int(x), int(y), tileColor(w.Tiles.At(x, y)))
				}
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			return png.Encode(f, img)
		},
	}
	return cmd
}

func tileColor(t wld.Tile) color.RGBA {
	if t.Tile < 0 {
		switch t.LiquidType {
		case wld.LiquidWater:
			return color.RGBA{0x2a, 0x5c, 0xaa, 0xff}
		case wld.LiquidLava:
			return color.RGBA{0xcc, 0x33, 0x00, 0xff}
		case wld.LiquidHoney:
			return color.RGBA{0xd4, 0x8a, 0x00, 0xff}
		case wld.LiquidShimmer:
			return color.RGBA{0xc0, 0x9e, 0xf0, 0xff}
		}
		return color.RGBA{0, 0, 0, 0}
	}
	rgb := wld.PaletteColor(t.Tile)
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}
}
