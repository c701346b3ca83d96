package main

import (
	"os"
	"strconv"

	"github.com/google/gops/agent"
	"github.com/mattn/go-isatty"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = newLogger()

var (
	agentStarted bool
	profiler     *pyroscope.Profiler
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(newFormatter(false))

	return l
}

// newFormatter forces colors on any terminal, Cygwin and MSYS included,
// where logrus alone would only detect a native console. noColor wins.
func newFormatter(noColor bool) *logrus.TextFormatter {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return &logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   tty && !noColor,
		DisableColors: noColor,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
			EnvVars: []string{"SORTDEMO_VERBOSE"},
		},
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "enable trace log, one line per swap",
			EnvVars: []string{"SORTDEMO_TRACE"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only warning and errors",
			EnvVars: []string{"SORTDEMO_QUIET"},
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "disable colors",
			EnvVars: []string{"SORTDEMO_NO_COLOR"},
		},
		&cli.BoolFlag{
			Name:    "agent",
			Usage:   "start a gops agent on a local port for diagnostics",
			EnvVars: []string{"SORTDEMO_AGENT"},
		},
		&cli.StringFlag{
			Name:    "pyroscope",
			Usage:   "pyroscope server address to send continuous profiles to",
			EnvVars: []string{"SORTDEMO_PYROSCOPE"},
		},
	}
}

// setup applies the global flags: log level, colors, the gops agent and
// the pyroscope profiler.
func setup(c *cli.Context) error {
	switch {
	case c.Bool("trace"):
		logger.SetLevel(logrus.TraceLevel)
	case c.Bool("verbose"):
		logger.SetLevel(logrus.DebugLevel)
	case c.Bool("quiet"):
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	logger.SetFormatter(newFormatter(c.Bool("no-color")))

	if c.Bool("agent") {
		if err := agent.Listen(agent.Options{Addr: "127.0.0.1:0", ShutdownCleanup: true}); err != nil {
			logger.Warnf("start gops agent: %v", err)
		} else {
			agentStarted = true
			logger.Debugf("gops agent listening")
		}
	}

	if c.IsSet("pyroscope") {
		tags := map[string]string{"pid": strconv.Itoa(os.Getpid())}
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		p, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "sortdemo." + c.Args().First(),
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		})
		if err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		} else {
			profiler = p
		}
	}

	return nil
}

func teardown() {
	if agentStarted {
		agent.Close()
		agentStarted = false
	}
	if profiler != nil {
		if err := profiler.Stop(); err != nil {
			logger.Warnf("stop pyroscope agent: %v", err)
		}
		profiler = nil
	}
}
