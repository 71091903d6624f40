package cli

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ss58-project/ss58gen/common/errors"
)

const (
	FlagAnnotationCustom = "custom"
)

// NewCommand pairs a cobra command with a viper instance whose env prefix
// follows the command path, inheriting persistent flags bound by the
// parent.
func NewCommand(parentCmd *cobra.Command, parentVc *viper.Viper, use, short string) (*cobra.Command, *viper.Viper) {
	c := &cobra.Command{Use: use, Short: short}
	c.SetFlagErrorFunc(DefaultFlagErrorFunc)
	if parentCmd != nil {
		parentCmd.AddCommand(c)
	}

	var pFlags *pflag.FlagSet
	envPrefix := strings.ReplaceAll(c.CommandPath(), " ", "_")
	if parentVc != nil {
		if v := parentVc.Get("env_prefix"); v != nil {
			envPrefix = v.(string)
		}
		if v := parentVc.Get("pflags"); v != nil {
			pFlags = v.(*pflag.FlagSet)
		}
	}
	vc := NewViper(envPrefix)
	if pFlags != nil {
		BindPFlags(vc, pFlags)
	}

	return c, vc
}

func NewViper(envPrefix string) *viper.Viper {
	vc := viper.New()
	vc.AutomaticEnv()
	vc.SetEnvPrefix(envPrefix)
	vc.Set("env_prefix", envPrefix)
	return vc
}

func BindPFlags(vc *viper.Viper, pFlags *pflag.FlagSet) error {
	var bindPFlags *pflag.FlagSet
	if v := vc.Get("pflags"); v != nil {
		bindPFlags = v.(*pflag.FlagSet)
	} else {
		bindPFlags = pflag.NewFlagSet("pflags", pflag.ContinueOnError)
		vc.Set("pflags", bindPFlags)
	}
	bindPFlags.AddFlagSet(pFlags)
	return vc.BindPFlags(pFlags)
}

func MarkAnnotationRequired(fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := fs.SetAnnotation(name, cobra.BashCompOneRequiredFlag, []string{"true"}); err != nil {
			return err
		}
	}
	return nil
}

func ValidateFlagsWithViper(vc *viper.Viper, fs *pflag.FlagSet, flagNames ...string) error {
	missingFlagNames := []string{}
	fs.VisitAll(func(f *pflag.Flag) {
		check := false
		if anns, ok := f.Annotations[cobra.BashCompCustom]; ok && (anns[0] == FlagAnnotationCustom) {
			check = true
		} else {
			for _, fn := range flagNames {
				if f.Name == fn {
					check = true
					break
				}
			}
		}

		if check && !f.Changed {
			if v := vc.GetString(f.Name); v == f.DefValue {
				missingFlagNames = append(missingFlagNames, f.Name)
			}
		}
	})

	if len(missingFlagNames) > 0 {
		return errors.Errorf(`required flag(s) "%s" not set`, strings.Join(missingFlagNames, `", "`))
	}
	return nil
}

// ViperDecodeOptJson decodes viper values into structs through their json
// tags; RawMessage fields accept either inline JSON or a file path.
func ViperDecodeOptJson(c *mapstructure.DecoderConfig) {
	c.TagName = "json"
	c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		func(inputValType reflect.Type, outValType reflect.Type, input interface{}) (interface{}, error) {
			if outValType.Name() == "RawMessage" {
				if inputValType.Kind() == reflect.Map && inputValType.Key().Kind() == reflect.String {
					return json.Marshal(input)
				} else if inputValType.Kind() == reflect.String {
					if input == "" {
						return []byte(nil), nil
					}
					return os.ReadFile(input.(string))
				}
			}
			return input, nil
		},
		c.DecodeHook)
}

func DefaultFlagErrorFunc(cmd *cobra.Command, err error) error {
	names := make([]string, 0)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = name + " or -" + f.Shorthand
		}
		names = append(names, name)
	})
	cmd.Println("Available Flags: " + strings.Join(names, ", "))
	return err
}
