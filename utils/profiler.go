package utils

import (
	. "github.com/Luismorlan/tribe/utils/flag"
	"github.com/pkg/errors"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// StartProfiler starts the Datadog continuous profiler. Only production
// servers run it.
func StartProfiler() error {
	err := profiler.Start(
		profiler.WithService(*ServiceName),
		profiler.WithEnv(datadogEnv()),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
		),
	)
	return errors.Wrap(err, "fail to start profiler")
}

// Stop profiler, OK to be closed multiple times
func CloseProfiler() {
	// Datadog profiler
	profiler.Stop()
}
