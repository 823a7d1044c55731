package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToLoadSave       = "failed to load save file"
	ErrFailedToWriteSave      = "failed to write save file"
	ErrFailedToLoadEdits      = "failed to load edit list"
	ErrFailedToReadYAMLFile   = "failed to read YAML file"
	ErrFailedToParseYAML      = "failed to parse YAML"
	ErrFailedToParseEdit      = "failed to parse edit"
	ErrFailedToApplyEdit      = "failed to apply edit"
	ErrSectionNotFound        = "section not found in current block"
	ErrUnsupportedFormat      = "unsupported output format"
	ErrFailedToEncodeReport   = "failed to encode report"
	ErrFailedToParseSelector  = "failed to parse section selector"
	ErrNoEditsGiven           = "no edits given"
	ErrInvalidValidationBytes = "invalid validation window"
	ErrCommandFailed          = "command failed: %v"
)

// Info messages
const (
	InfoSaveLoaded         = "Loaded %s (%d bytes), current block %s (save index %d)"
	InfoSaveWritten        = "Wrote %s (%d bytes)"
	InfoEditApplied        = "Applied %d byte(s) to %s at 0x%X"
	InfoChecksumUpdated    = "Updated checksum of %s: 0x%04X -> 0x%04X"
	InfoWindowInferred     = "Inferred validation window of %s: %d bytes"
	InfoDifferencesFound   = "Found differences in %d section(s)"
	InfoNoDifferencesFound = "No differences found between current blocks"
)

// Debug messages
const (
	DebugBlockInfo       = "Block %s: save index %d"
	DebugSectionInfo     = "Slot %2d: id=%d checksum=0x%04X computed=0x%04X window=%d"
	DebugEditParsed      = "Edit: section %d offset 0x%X values % X"
	DebugWindowUnchanged = "No validation window reproduces the checksum of %s, keeping %d bytes"
	DebugOpaqueRegion    = "Carrying %s through unchanged (%d bytes)"
)

// Warning messages
const (
	WarnChecksumMismatch = "Checksum mismatch in %s: stored %s, computed %s"
	WarnUnknownSectionID = "Slot %d holds unknown section id %d"
	WarnChecksumNotFixed = "Checksums were not updated; the game may reject the patched sections"
	WarnBlocksTied       = "Both blocks have save index %d, using block B"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}

// FormatErrorString creates a formatted error with string details
func FormatErrorString(baseMessage, details string, args ...interface{}) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: "+details, append([]interface{}{baseMessage}, args...)...)
	}
	return fmt.Errorf("%s: %s", baseMessage, details)
}
