package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ss58-project/ss58gen/cmd/cli"
	"github.com/ss58-project/ss58gen/common/errors"
	"github.com/ss58-project/ss58gen/common/log"
	"github.com/ss58-project/ss58gen/gen"
	"github.com/ss58-project/ss58gen/registry"
)

type genConfig struct {
	RegistryPath string          `json:"registry"`
	OutDir       string          `json:"out"`
	Targets      []string        `json:"targets"`
	Package      string          `json:"package"`
	Manifest     json.RawMessage `json:"manifest"`
	TemplatePath string          `json:"template"`
	SkipReserved bool            `json:"skip_reserved"`
}

func NewGenCmd(parentCmd *cobra.Command, parentVc *viper.Viper) *cobra.Command {
	cmd, vc := cli.NewCommand(parentCmd, parentVc, "gen",
		"Generate artifacts from the registry document")

	flags := cmd.Flags()
	flags.StringP("registry", "r", DefaultRegistryPath, "Registry document path")
	flags.StringP("out", "o", "dist", "Output directory")
	flags.StringSliceP("targets", "t", defaultTargets(), "Targets to generate")
	flags.String("package", "ss58", "Package name of the go-enum artifact")
	flags.String("manifest", "", "Package manifest to patch (path to a JSON file)")
	flags.String("template", "", "Override template for the type-declaration artifact")
	flags.Bool("skip_reserved", false, "Drop reserved entries from the go-enum artifact")
	cli.BindPFlags(vc, flags)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := new(genConfig)
		if err := vc.Unmarshal(cfg, cli.ViperDecodeOptJson); err != nil {
			return err
		}
		return generate(cfg)
	}
	return cmd
}

func containsTarget(names []string, t gen.Target) bool {
	for _, name := range names {
		if name == string(t) {
			return true
		}
	}
	return false
}

// manifest-patch is opt-in: it needs an input manifest to patch.
func defaultTargets() []string {
	return []string{
		string(gen.TargetGoEnum),
		string(gen.TargetJSONBundle),
		string(gen.TargetTypeDecl),
	}
}

func generate(cfg *genConfig) error {
	logger := log.WithFields(log.Fields{log.FieldKeyModule: "gen"})

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return err
	}

	// Validation aborts the run before any artifact is written, with
	// every violation in the report.
	validated, err := registry.Validate(reg)
	if err != nil {
		return err
	}
	logger.Infof("registry %s is valid (%d entries)", cfg.RegistryPath, reg.Len())

	opts := &gen.Options{
		Package:      cfg.Package,
		Source:       filepath.Base(cfg.RegistryPath),
		SkipReserved: cfg.SkipReserved,
		Manifest:     cfg.Manifest,
	}
	if cfg.TemplatePath != "" {
		bs, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return errors.IOError.Wrapf(err,
				"fail to read template path=%s", cfg.TemplatePath)
		}
		opts.TypeTemplate = string(bs)
	}

	targets := cfg.Targets
	if len(cfg.Manifest) > 0 && !containsTarget(targets, gen.TargetManifestPatch) {
		targets = append(targets, string(gen.TargetManifestPatch))
	}

	// Render everything before touching the output directory, so a
	// failing target leaves no partial artifact set behind.
	var files []gen.File
	for _, name := range targets {
		fs, err := gen.Generate(validated, gen.Target(name), opts)
		if err != nil {
			return err
		}
		files = append(files, fs...)
		logger.Debugf("rendered target=%s files=%d", name, len(fs))
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return errors.IOError.Wrapf(err, "fail to make output dir=%s", cfg.OutDir)
	}
	for _, f := range files {
		path := filepath.Join(cfg.OutDir, f.Name)
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return errors.IOError.Wrapf(err, "fail to write %s", path)
		}
		logger.Infof("wrote %s (%d bytes)", path, len(f.Content))
	}
	return nil
}
