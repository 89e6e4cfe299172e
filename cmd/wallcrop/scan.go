package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dixieflatline76/WallCrop/config"
	"github.com/dixieflatline76/WallCrop/pkg/cropper"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// scanEntry is one line of the YAML scan output.
type scanEntry struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

func newScanCmd() *cobra.Command {
	var (
		width, height int
		format        string
	)
	cmd := &cobra.Command{
		Use:   "scan <folder>",
		Short: "List which images in a folder are large enough to crop",
		Long: `Scan reads the header of every supported image in a folder and reports its
size and whether it fits the crop box. Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid crop size %dx%d", width, height)
			}
			set, err := cropper.ScanImageSet(args[0])
			if err != nil {
				return err
			}
			results, err := cropper.ScanFolder(cmd.Context(), set, width, height)
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
				return writeScanYAML(cmd.OutOrStdout(), results)
			case "text":
				return writeScanText(cmd.OutOrStdout(), results)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().IntVar(&width, "width", config.DefaultCropWidth, "crop width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultCropHeight, "crop height in pixels")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeScanText(w io.Writer, results []cropper.ScanResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	counts := make(map[cropper.ScanStatus]int)
	for _, r := range results {
		counts[r.Status]++
		size := "-"
		if r.Status != cropper.Unreadable {
			size = fmt.Sprintf("%dx%d", r.Width, r.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, size, r.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d eligible, %d too small, %d unreadable\n",
		counts[cropper.Eligible], counts[cropper.TooSmall], counts[cropper.Unreadable])
	return err
}

func writeScanYAML(w io.Writer, results []cropper.ScanResult) error {
	entries := make([]scanEntry, 0, len(results))
	for _, r := range results {
		e := scanEntry{Name: r.Name, Width: r.Width, Height: r.Height, Status: r.Status.String()}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
