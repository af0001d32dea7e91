/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
	Seeder    = "seeder"
)

var (
	ServiceName = flag.String("service", APIServer, "name reported to logs and traces, 'api_server' or 'seeder'")
	SettingPath = flag.String("setting", "", "path to the app setting yaml, defaults are used when empty")
	Port        = flag.Int("port", 8080, "port the api server listens on")
)

func ParseFlags() {
	flag.Parse()
}
