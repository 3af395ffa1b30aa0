// Package fileutil holds file modes shared by writers.
package fileutil

import "os"

// ReadableByAll is the mode of generated client source.
const ReadableByAll os.FileMode = 0o644
