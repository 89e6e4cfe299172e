//go:build release

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dixieflatline76/WallCrop/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the release log file.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 2
	maxLogAgeDays = 28
)

func init() {
	dir, err := logDir()
	if err != nil {
		log.Fatalf("Failed to locate log directory: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(dir, config.AppName+config.LogExt),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	})
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// logDir is under the user cache dir on Windows and the home dir elsewhere.
func logDir() (string, error) {
	if runtime.GOOS == "windows" {
		base, err := os.UserCacheDir()
		return filepath.Join(base, config.LogWinSubDir), err
	}
	base, err := os.UserHomeDir()
	return filepath.Join(base, config.LogSubDir), err
}

// Print writes to the rotated log file
func Print(v ...any) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf writes to the rotated log file
func Printf(format string, v ...any) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println writes to the rotated log file
func Println(v ...any) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal logs and exits with status 1
func Fatal(v ...any) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs and exits with status 1
func Fatalf(format string, v ...any) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln logs and exits with status 1
func Fatalln(v ...any) {
	log.Output(2, fmt.Sprintln(v...))
	os.Exit(1)
}

// Debug is a no-op in release builds
func Debug(v ...any) {}

// Debugf is a no-op in release builds
func Debugf(format string, v ...any) {}
