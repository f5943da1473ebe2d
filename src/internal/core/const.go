// FILE: logfan/src/internal/core/const.go
package core

// Defaults shared by config and pipeline
const (
	DefaultLogsDirectory   = "logs"
	DefaultTimestampFormat = "2006-01-02 15:04:05"
)

// Aggregate file names, one per routed severity class
const (
	WarningsFileName = "warnings.log"
	ErrorsFileName   = "errors.log"
	FatalsFileName   = "fatals.log"
)

// LogFileExt is appended to a source name to build its file path.
const LogFileExt = ".log"
