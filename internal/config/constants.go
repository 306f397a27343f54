package config

const SourceFileExt = ".bf"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".bf", ".b"}

// DefaultTapeSize matches the classic 30000-cell machine; the
// interpreter's tape still grows past it on demand.
const DefaultTapeSize = 30000

// ConfigFileName is the per-user configuration file, looked up in the
// working directory first and the home directory second.
const ConfigFileName = ".funbf.yaml"

// HistoryFileName is the default run-history database, relative to the
// user's home directory.
const HistoryFileName = ".funbf-history.db"

// DebugLogFileName receives log output while the TUI owns the
// terminal.
const DebugLogFileName = "funbf-debug.log"
