package log

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup sends log output to a rotating file. Print out to console as
// well if debug = true.
func Setup(logFilePath string, maxSizeMB int, debugMode bool) {
	var w io.Writer = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28, //days
	}
	if debugMode {
		w = io.MultiWriter(w, os.Stderr)
	}
	log.SetOutput(w)
}

func Println(v ...interface{}) {
	log.Println(v...)
}

func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	log.Fatal(v...)
}
