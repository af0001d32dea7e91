package utils

import (
	"github.com/Luismorlan/tribe/utils/dotenv"
	. "github.com/Luismorlan/tribe/utils/flag"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func datadogEnv() string {
	if dotenv.IsProdEnv() {
		return "production"
	}
	return "development"
}

// StartTracer starts the Datadog tracer, spans are produced by the gin
// middleware installed on the router.
func StartTracer() {
	tracer.Start(
		tracer.WithService(*ServiceName),
		tracer.WithEnv(datadogEnv()),
	)

	Logger.Log.WithFields(
		logrus.Fields{"env": datadogEnv()},
	).Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	// Datadog tracer
	tracer.Stop()
}
