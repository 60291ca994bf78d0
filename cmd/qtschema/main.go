package main

import (
	"fmt"
	"os"

	"github.com/grovetools/core/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/qtschema/internal/config"
)

var (
	configFile string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "qtschema",
	Short: "Generate typed code from merged JSON Schema with quicktype",
	Long: `qtschema merges JSON Schema fragments into a single document and runs quicktype
once per target language to produce source code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	vInfo := version.GetInfo()
	rootCmd.Version = vInfo.Version
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Project file (default: qtschema.yml, qtschema.yaml or qtschema.toml in the current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $QTSCHEMA_LOG_LEVEL or warn)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(argsCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the command logger from flags, falling back to the environment.
func newLogger(env *config.Env) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	levelName := logLevel
	if levelName == "" {
		levelName = env.LogLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	switch logFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
	default:
		return nil, fmt.Errorf("unknown log format %q", logFormat)
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
