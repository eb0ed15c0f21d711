package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/socialpedia/backend/utils/dotenv"
	"github.com/socialpedia/backend/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	// Production emits machine-parsable JSON, everything else stays human
	// readable on stderr.
	if os.Getenv("SOCIALPEDIA_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv("SOCIALPEDIA_ENV") != dotenv.ProdEnv},
	)
}
