package main

import (
	"fmt"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/Luismorlan/tribe/app_setting"
	"github.com/Luismorlan/tribe/file_store"
	"github.com/Luismorlan/tribe/server"
	"github.com/Luismorlan/tribe/server/metrics"
	"github.com/Luismorlan/tribe/store"
	. "github.com/Luismorlan/tribe/utils"
	"github.com/Luismorlan/tribe/utils/dotenv"
	. "github.com/Luismorlan/tribe/utils/flag"
	. "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/prometheus/client_golang/prometheus"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	ParseFlags()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	// env and flags are known now, rebuild the logger with them
	InitLogger()

	setting, err := app_setting.ParseAppSetting(*SettingPath)
	if err != nil {
		Log.Fatalln("fail to load app setting: ", err)
	}

	StartTracer()
	if dotenv.IsProdEnv() {
		if err := StartProfiler(); err != nil {
			Log.WithError(err).Warn("profiler disabled")
		}
	}
	defer cleanup()

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatalln("fail to connect to database: ", err)
	}
	if err := DatabaseSetupAndMigration(db); err != nil {
		Log.Fatalln("fail to migrate database: ", err)
	}

	files, err := file_store.NewFileStore(setting)
	if err != nil {
		Log.Fatalln("fail to create file store: ", err)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
	if setting.STATSD_ADDR != "" {
		client, err := statsd.New(setting.STATSD_ADDR)
		if err != nil {
			Log.WithError(err).Warn("statsd disabled")
		} else {
			defer client.Close()
			m.Statsd = client
		}
	}

	router := server.NewRouter(&server.Server{
		Store:    store.New(db),
		Files:    files,
		Setting:  setting,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	}, cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Api-Key"},
	}), gintrace.Middleware(*ServiceName))

	Log.Info("api server starts up on port ", *Port)
	if err := router.Run(fmt.Sprintf(":%d", *Port)); err != nil {
		Log.WithError(err).Error("api server stopped")
	}
}
