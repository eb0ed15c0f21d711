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
)

var (
	IsDevelopment bool
	ByPassAuth    bool
	ServiceName   string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.BoolVar(&ByPassAuth, "bypass_auth", false, "set to true to skip bearer token verification, the acting user is then read directly from the 'sub' header. Local debugging only")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the service to run")
}

// ParseFlags must be called once from main before any flag value is read.
func ParseFlags() {
	flag.Parse()
}
