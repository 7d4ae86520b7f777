package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"larkfmt/internal/config"
)

// envPrefix namespaces environment overrides, e.g. LARKFMT_BODY_GAP.
const envPrefix = "LARKFMT"

// styleKey binds one style field to a flag and an environment variable.
type styleKey struct {
	name  string
	usage string
	field func(*config.Style) *int
}

var styleKeys = []styleKey{
	{"colon-pad", "extra spaces between the longest header and ':'", func(s *config.Style) *int { return &s.ColonPad }},
	{"body-gap", "spaces between ':' and the first symbol", func(s *config.Style) *int { return &s.BodyGap }},
	{"comment-gap", "spaces between the widest line and trailing comments", func(s *config.Style) *int { return &s.CommentGap }},
	{"max-comment-column", "cap for the trailing-comment column (0 = none)", func(s *config.Style) *int { return &s.MaxCommentColumn }},
	{"line-width", "warn about lines longer than this (0 = off)", func(s *config.Style) *int { return &s.LineWidth }},
}

// settings resolves the style keys from flags and the environment.
var settings = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func addStyleFlags(flags *pflag.FlagSet) {
	for _, k := range styleKeys {
		flags.Int(k.name, 0, k.usage)
	}
}

func bindFlags(flags *pflag.FlagSet) {
	_ = settings.BindPFlag("config", flags.Lookup("config"))
	for _, k := range styleKeys {
		_ = settings.BindPFlag(k.name, flags.Lookup(k.name))
	}
}

// readStyleOverride collects the style values set through flags or the
// environment. Flags win over environment variables; unset keys keep the
// value from the style file.
func readStyleOverride() (func(*config.Style), error) {
	type setting struct {
		field func(*config.Style) *int
		value int
	}
	var values []setting
	for _, k := range styleKeys {
		if !settings.IsSet(k.name) {
			continue
		}
		n, err := cast.ToIntE(settings.Get(k.name))
		if err != nil {
			return nil, fmt.Errorf("invalid value for --%s / %s: %w", k.name, envName(k.name), err)
		}
		values = append(values, setting{field: k.field, value: n})
	}
	if len(values) == 0 {
		return nil, nil
	}
	return func(s *config.Style) {
		for _, st := range values {
			*st.field(s) = st.value
		}
	}, nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
