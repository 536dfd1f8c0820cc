package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/suparena/pathtemplates"
	"github.com/suparena/pathtemplates/loader"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("pathresolve failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		argPairs   []string
		envFile    string
		asStr      bool
		logLevel   string
		logFormat  string
	)

	info := pathtemplates.GetVersionInfo()

	cmd := &cobra.Command{
		Use:   "pathresolve --config paths.yaml [alias...]",
		Short: "Resolve named path templates from a YAML alias map",
		Long: `pathresolve loads a YAML mapping of alias names to path templates and
resolves the requested aliases. Placeholder values are supplied with --arg
key=value; values are parsed as int, then float, then string, so numeric
format specs such as {subject:03d} work from the command line. With no
alias arguments the registered aliases are listed.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s, %s)", info.Version, info.GitCommit, info.BuildDate, info.GoVersion),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logLevel, logFormat)
		},
		RunE: func(cmd *cobra.Command, names []string) error {
			var opts []pathtemplates.Option
			if asStr {
				opts = append(opts, pathtemplates.WithPlainStrings())
			}
			files := pathtemplates.New(opts...)

			if err := loader.LoadFile(configPath, files); err != nil {
				return err
			}
			log.Debug("alias map loaded", "config", configPath, "aliases", len(files.Names()))

			args, err := collectArgs(argPairs, envFile)
			if err != nil {
				return err
			}

			if len(names) == 0 {
				for _, name := range files.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			for _, name := range names {
				p, err := files.Resolve(name, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "paths.yaml", "YAML alias map to load")
	cmd.Flags().StringArrayVarP(&argPairs, "arg", "a", nil, "placeholder value as key=value (repeatable)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file whose entries become default placeholder values")
	cmd.Flags().BoolVar(&asStr, "as-str", false, "print plain strings instead of structured paths")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format (text, logfmt, json)")

	return cmd
}

func setupLogging(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch format {
	case "text":
		log.SetFormatter(log.TextFormatter)
	case "logfmt":
		log.SetFormatter(log.LogfmtFormatter)
	case "json":
		log.SetFormatter(log.JSONFormatter)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

// collectArgs merges dotenv defaults and explicit --arg pairs into the
// resolution arguments. Explicit pairs win over dotenv entries.
func collectArgs(pairs []string, envFile string) (pathtemplates.Args, error) {
	args := pathtemplates.Args{}

	if envFile != "" {
		env, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		for k, v := range env {
			args[k] = parseArgValue(v)
		}
		log.Debug("env file loaded", "file", envFile, "entries", len(env))
	}

	for _, pair := range pairs {
		k, v, err := splitArgPair(pair)
		if err != nil {
			return nil, err
		}
		args[k] = parseArgValue(v)
	}

	return args, nil
}
