package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger from LOG_LEVEL and LOG_PRETTY,
// writing to out. It runs before config is loaded, so it reads the environment directly.
func Init(out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY")); pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: out != os.Stdout}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", "studyquiz").Logger()
}
