package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	humanize "github.com/goliatone/go-humanize-duration"
)

const envPrefix = "HUMANIZE"

// NewRootCmd builds the humanize command tree. Settings come from flags,
// HUMANIZE_* environment variables and an optional YAML file, in that
// order of precedence.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "humanize [flags] <ms>...",
		Short: "Render durations as human readable phrases",
		Long: "Render each argument, a signed millisecond count, as a phrase in the\n" +
			"selected language. Use -- before negative values.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfigFile(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, v)

			opts, err := optionsFrom(v, logger)
			if err != nil {
				return err
			}

			h, err := humanize.NewHumanizer(opts...)
			if err != nil {
				return err
			}

			for _, arg := range args {
				ms, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("%q is not a millisecond count", arg)
				}
				out, err := h.Humanize(ms)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "YAML file with default settings")
	flags.Bool("debug", false, "log every rendering to stderr")
	flags.String("lang", "en", "language identifier")
	flags.StringSlice("fallback", nil, "fallback languages, in order")
	flags.Bool("parent-fallback", false, "try parent tags (pt-BR to pt) after every named language")
	flags.StringSlice("units", nil, "units to use, largest first (y,mo,w,d,h,m,s,ms)")
	flags.Bool("round", false, "round the smallest retained unit")
	flags.Int("largest", 0, "maximum number of units to render, 0 for all")
	flags.Int("max-decimal-points", -1, "truncate the smallest unit to this many decimals")
	flags.String("spacer", " ", "text between count and unit word")
	flags.String("conjunction", "", "text before the last unit, e.g. \" and \"")
	flags.Bool("serial-comma", true, "add a comma before the conjunction of three or more units")
	flags.String("decimal", "", "decimal separator, overriding the language")
	flags.String("delimiter", "", "separator between units, overriding the language")
	flags.Bool("time-adverb", false, "wrap the result as past or future, based on the sign")
	flags.StringSlice("dict", nil, "JSON or YAML dictionary files to load")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(newLanguagesCmd(v))

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) zerolog.Logger {
	level := zerolog.InfoLevel
	if v.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func optionsFrom(v *viper.Viper, logger zerolog.Logger) ([]humanize.Option, error) {
	opts := []humanize.Option{
		humanize.WithLanguage(v.GetString("lang")),
		humanize.WithRound(v.GetBool("round")),
		humanize.WithLargest(v.GetInt("largest")),
		humanize.WithSpacer(v.GetString("spacer")),
		humanize.WithConjunction(v.GetString("conjunction")),
		humanize.WithSerialComma(v.GetBool("serial-comma")),
		humanize.WithTimeAdverb(v.GetBool("time-adverb")),
		humanize.WithParentFallback(v.GetBool("parent-fallback")),
		humanize.WithHooks(humanize.NewLogHook(logger)),
	}

	if fallbacks := splitList(v.GetStringSlice("fallback")); len(fallbacks) > 0 {
		opts = append(opts, humanize.WithFallbacks(fallbacks...))
	}

	if names := splitList(v.GetStringSlice("units")); len(names) > 0 {
		units := make([]humanize.Unit, 0, len(names))
		for _, name := range names {
			unit, err := humanize.ParseUnit(name)
			if err != nil {
				return nil, err
			}
			units = append(units, unit)
		}
		opts = append(opts, humanize.WithUnits(units...))
	}

	if n := v.GetInt("max-decimal-points"); n >= 0 {
		opts = append(opts, humanize.WithMaxDecimalPoints(n))
	}
	if v.IsSet("decimal") {
		opts = append(opts, humanize.WithDecimal(v.GetString("decimal")))
	}
	if v.IsSet("delimiter") {
		opts = append(opts, humanize.WithDelimiter(v.GetString("delimiter")))
	}
	if files := splitList(v.GetStringSlice("dict")); len(files) > 0 {
		opts = append(opts, humanize.WithLoader(humanize.NewFileLoader(files...)))
	}

	return opts, nil
}

// splitList accepts both repeated values and comma separated ones, which is
// how lists arrive from environment variables.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
