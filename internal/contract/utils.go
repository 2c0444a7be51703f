package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/organvm/analytics-engine/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold) // standard danger
	WarningColor  = color.New(color.FgYellow)          // standard caution, not bold
	InfoColor     = color.New(color.FgCyan)            // informational signal
)

// GetColorSeverity returns a colored severity label for table output.
func GetColorSeverity(severity string) string {
	switch severity {
	case schema.CriticalSeverity:
		return CriticalColor.Sprint(severity)
	case schema.WarningSeverity:
		return WarningColor.Sprint(severity)
	default:
		return InfoColor.Sprint(severity)
	}
}

// SelectOutputFile returns the file handle for console output, falling back
// to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens a path for table display, keeping the tail.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= 3 || len(path) <= maxWidth {
		return path
	}
	return "..." + path[len(path)-maxWidth+3:]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
