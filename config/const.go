package config

import "strings"

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "0.1.0"

// AppName is the name of the application.
const AppName = "WallCrop"

// AppID is the Fyne application ID, used to scope stored preferences.
const AppID = "com.dixieflatline76.wallcrop"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Defaults for the crop box and the display fallback.
const (
	DefaultCropWidth      = 2880
	DefaultCropHeight     = 1800
	DefaultDisplayWidth   = 1920
	DefaultDisplayHeight  = 1080
	DefaultJPEGQuality    = 95
	DefaultOutputSubDir   = "cropped"
	CroppedFilenamePrefix = "cropped_"
)

// Environment variables read by the CLI (a .env file in the working directory is honored).
const (
	EnvInputDir  = "WALLCROP_INPUT"
	EnvOutputDir = "WALLCROP_OUTPUT"
)
