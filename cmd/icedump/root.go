// Command icedump is a diagnostic driver for the tcpmux and candidate
// packages: it can listen for ICE-TCP connections and print every packet
// the demultiplexer extracts, dial out to a remote peer with automatic
// reconnection, or decode one or more SDP candidate lines given on the
// command line.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logLevel string
	logFile  string

	rootCmd = &cobra.Command{
		Use:           "icedump",
		Short:         "ICE-TCP demultiplexer and candidate inspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLog(logLevel, logFile)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "console", `log output: "console" or a file path, rotated via lumberjack`)

	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(dialCmd)
	rootCmd.AddCommand(candidateCmd)
}

// initLog mirrors netbird's util.InitLog: parse the level, and if a
// file path was given, send logrus output through a rotating lumberjack
// writer instead of stderr.
func initLog(level, path string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	if path != "" && path != "console" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    5,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		})
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
