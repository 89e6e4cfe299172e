package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/dixieflatline76/WallCrop/config"
	"github.com/dixieflatline76/WallCrop/pkg/cropper"
	"github.com/dixieflatline76/WallCrop/pkg/sysinfo"
	"github.com/dixieflatline76/WallCrop/ui"
	"github.com/dixieflatline76/WallCrop/util/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions holds the command line flags of the GUI command.
type rootOptions struct {
	output      string
	width       int
	height      int
	report      string
	faceCascade string
	autoSuggest bool
}

// settings is the effective configuration of a crop session.
type settings struct {
	inputDir    string
	outputDir   string
	cropWidth   int
	cropHeight  int
	jpegQuality int
	reportPath  string
	cascadePath string
	autoSuggest bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "wallcrop [input folder]",
		Short: "Crop a folder of images to a fixed size by hand",
		Long: `WallCrop shows the images of a folder one at a time. Drag the red box over
the part you want and press Crop (or Enter) to save it as cropped_<name>.
Press OK to skip an image. Images smaller than the crop box are skipped.

The input folder is taken from the argument, $WALLCROP_INPUT or the last
folder used. Crops go to --output, $WALLCROP_OUTPUT or <input>/cropped.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts, args)
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.AddCommand(newScanCmd())
	return cmd
}

func (o *rootOptions) addFlags(f *pflag.FlagSet) {
	f.StringVarP(&o.output, "output", "o", "", "folder the crops are written to")
	f.IntVar(&o.width, "width", config.DefaultCropWidth, "crop width in pixels")
	f.IntVar(&o.height, "height", config.DefaultCropHeight, "crop height in pixels")
	f.StringVar(&o.report, "report", "", "append a YAML record of every crop to this file")
	f.StringVar(&o.faceCascade, "face-cascade", "", "pigo face cascade file used by Suggest")
	f.BoolVar(&o.autoSuggest, "auto-suggest", false, "place the crop box automatically on every image")
}

// resolveSettings merges flags, environment and stored preferences, in that
// order of precedence.
func resolveSettings(cmd *cobra.Command, opts *rootOptions, args []string, cfg *config.AppConfig) settings {
	changed := cmd.Flags().Changed
	s := settings{
		inputDir:    cfg.GetInputDir(),
		outputDir:   cfg.GetOutputDir(),
		jpegQuality: cfg.GetJPEGQuality(),
		reportPath:  opts.report,
		cascadePath: cfg.GetFaceCascadePath(),
		autoSuggest: cfg.GetAutoSuggest(),
	}
	s.cropWidth, s.cropHeight = cfg.GetCropSize()

	if v := os.Getenv(config.EnvInputDir); v != "" {
		s.inputDir = v
	}
	if len(args) > 0 {
		s.inputDir = args[0]
	}

	if v := os.Getenv(config.EnvOutputDir); v != "" {
		s.outputDir = v
	}
	if changed("output") {
		s.outputDir = opts.output
	}

	if changed("width") {
		s.cropWidth = opts.width
	}
	if changed("height") {
		s.cropHeight = opts.height
	}
	if changed("face-cascade") {
		s.cascadePath = opts.faceCascade
	}
	if changed("auto-suggest") {
		s.autoSuggest = opts.autoSuggest
	}
	return s
}

// outputDirFor returns the folder crops of inputDir are written to.
func (s settings) outputDirFor(inputDir string) string {
	if s.outputDir != "" {
		return s.outputDir
	}
	return filepath.Join(inputDir, config.DefaultOutputSubDir)
}

func (s settings) validate() error {
	if s.cropWidth <= 0 || s.cropHeight <= 0 {
		return fmt.Errorf("invalid crop size %dx%d", s.cropWidth, s.cropHeight)
	}
	if s.inputDir != "" {
		info, err := os.Stat(s.inputDir)
		if err != nil {
			return fmt.Errorf("input folder: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("input folder %s is not a directory", s.inputDir)
		}
	}
	return nil
}

// controllerFactory builds a Controller for every folder the window opens.
// Settings are resolved again on each call so preference edits apply to the
// next folder; flags given on the command line still take precedence. The
// Suggester is reloaded only when the cascade path changes.
func controllerFactory(cmd *cobra.Command, opts *rootOptions, cfg *config.AppConfig, report *cropper.Report) ui.ControllerFactory {
	var (
		suggester   *cropper.Suggester
		cascadePath string
	)
	return func(inputDir string, display cropper.Display) (*cropper.Controller, error) {
		s := resolveSettings(cmd, opts, nil, cfg)
		s.inputDir = inputDir
		if err := s.validate(); err != nil {
			return nil, err
		}

		if suggester == nil || s.cascadePath != cascadePath {
			suggester = cropper.LoadSuggester(s.cascadePath)
			cascadePath = s.cascadePath
			log.Debugf("Face mode %t", suggester.FaceMode())
		}

		set, err := cropper.ScanImageSet(inputDir)
		if err != nil {
			return nil, err
		}
		fm := cropper.NewFileManager(s.outputDirFor(inputDir))
		log.Printf("Found %d images in %s, writing %dx%d crops to %s",
			set.Len(), set.Dir(), s.cropWidth, s.cropHeight, fm.GetOutputDir())
		return cropper.NewController(set, fm, display, cropper.Options{
			CropWidth:   s.cropWidth,
			CropHeight:  s.cropHeight,
			JPEGQuality: s.jpegQuality,
			AutoSuggest: s.autoSuggest,
			Suggester:   suggester,
			Report:      report,
		}), nil
	}
}

func runGUI(cmd *cobra.Command, opts *rootOptions, args []string) error {
	acquired, err := acquireLock()
	if err != nil {
		return fmt.Errorf("single instance check: %w", err)
	}
	if !acquired {
		return errors.New("another instance of " + config.AppName + " is already running")
	}
	defer releaseLock()

	a := app.NewWithID(config.AppID)
	cfg := config.NewAppConfig(a.Preferences())

	s := resolveSettings(cmd, opts, args, cfg)
	if err := s.validate(); err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.SetOutputDir(s.outputDir)
	}

	var report *cropper.Report
	if s.reportPath != "" {
		report, err = cropper.OpenReport(s.reportPath)
		if err != nil {
			return err
		}
	}

	display := sysinfo.NewDisplay(cfg.GetDisplaySize())
	cropApp := ui.NewCropApp(a, cfg, display, controllerFactory(cmd, opts, cfg, report))
	cropApp.Run(s.inputDir)
	return nil
}
