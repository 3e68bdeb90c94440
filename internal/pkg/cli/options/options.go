// Package options provides the values parsed from flags, ENVs and ".env" files.
package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hw-tools/crategen/internal/pkg/env"
	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
)

const (
	VerboseOpt    = "verbose"
	LogFileOpt    = "log-file"
	WorkingDirOpt = "working-dir"
	PartTableOpt  = "part-table"
	AssumeYesOpt  = "assume-yes"
)

type SetBy int

const (
	SetByUnknown SetBy = iota
	SetByFlag
	SetByFlagDefault
	SetByEnv
	SetManually
)

// Options are loaded with this priority: flag > OS ENV > ".env" file > flag default.
type Options struct {
	*viper.Viper
	envNaming *env.NamingConvention
	setBy     map[string]SetBy
}

func New() *Options {
	return &Options{
		Viper:     viper.New(),
		envNaming: env.NewNamingConvention(),
		setBy:     make(map[string]SetBy),
	}
}

func (o *Options) Load(logger log.Logger, osEnvs *env.Map, fs filesystem.Fs, flags *pflag.FlagSet) error {
	// Load ENVs from OS and ".env" files in the working dir, OS values take precedence.
	envs := env.LoadDotEnv(logger, osEnvs, fs, []string{"."})

	flags.VisitAll(func(flag *pflag.Flag) {
		envName := o.envNaming.Replace(flag.Name)
		switch {
		case flag.Changed:
			o.setBy[flag.Name] = SetByFlag
			o.Viper.Set(flag.Name, flag.Value.String())
		default:
			if value, found := envs.Lookup(envName); found {
				o.setBy[flag.Name] = SetByEnv
				o.Viper.Set(flag.Name, value)
			} else {
				o.setBy[flag.Name] = SetByFlagDefault
				o.Viper.Set(flag.Name, flag.Value.String())
			}
		}
	})

	return nil
}

// Set value manually, it has the highest priority.
func (o *Options) Set(key string, value any) {
	o.setBy[key] = SetManually
	o.Viper.Set(key, value)
}

// KeySetBy returns the source of the value.
func (o *Options) KeySetBy(key string) SetBy {
	return o.setBy[key]
}

// Validate required options, empty string means OK.
func (o *Options) Validate(required []string) string {
	var messages []string
	for _, key := range required {
		if len(o.GetString(key)) > 0 {
			continue
		}
		keyHumanReadable := strcase.ToDelimited(key, ' ')
		messages = append(messages, fmt.Sprintf(
			`- Missing %s. Please use "--%s" flag or ENV variable "%s".`,
			keyHumanReadable, key, o.envNaming.Replace(key),
		))
	}
	return strings.Join(messages, "\n")
}

// Dump Options for debugging.
func (o *Options) Dump() string {
	var out strings.Builder
	out.WriteString("Parsed options:\n")

	keys := make([]string, 0, len(o.setBy))
	for k := range o.setBy {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.WriteString(fmt.Sprintf("  %s = %#v\n", k, o.Get(k)))
	}
	return out.String()
}
