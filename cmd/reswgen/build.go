package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reswgen/internal/builder"
	"reswgen/internal/config"
	"reswgen/internal/diagnostic"
	"reswgen/internal/export"
	"reswgen/internal/model"
)

type buildOptions struct {
	itemsFile    string
	resourcePath string
	namespace    string
	advanced     bool
	out          string
}

func (b *buildOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.itemsFile, "items", "", "YAML interchange list of resource entries")
	cmd.Flags().StringVar(&b.resourcePath, "resource", "", "path of the resource file the entries come from (defaults to --items)")
	cmd.Flags().StringVar(&b.namespace, "namespace", "", "default namespace of the resource file")
	cmd.Flags().BoolVar(&b.advanced, "advanced", false, "enable format tags, plurals and variants")
	_ = cmd.MarkFlagRequired("items")
}

func newBuildCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the model and export it as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			class, _, err := runBuild(cmd, root, opts)
			if err != nil {
				return err
			}

			data, err := export.ClassYAML(class)
			if err != nil {
				return err
			}

			if opts.out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return export.WriteFile(opts.out, data)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (stdout when empty)")

	return cmd
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build the model and fail on error diagnostics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			class, diags, err := runBuild(cmd, root, opts)
			if err != nil {
				return err
			}

			if err := diags.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d localizations, %d warnings\n",
				class.ClassName, len(class.Localizations), len(diags.Warnings))

			return nil
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, opts *buildOptions) (*model.StronglyTypedClass, *diagnostic.Diagnostics, error) {
	cfg, err := config.Load(root.configFile, root.envFile)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("namespace") {
		cfg.Namespace = opts.namespace
	}

	if cmd.Flags().Changed("advanced") {
		cfg.Advanced = opts.advanced
	}

	resourcePath := opts.resourcePath
	if resourcePath == "" {
		resourcePath = opts.itemsFile
	}

	content, err := os.ReadFile(opts.itemsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read items file %s: %w", opts.itemsFile, err)
	}

	diags := &diagnostic.Diagnostics{}

	var project builder.ProjectMetadata = builder.NoProject
	if cfg.Project.Name != "" {
		project = builder.StaticProject{Name: cfg.Project.Name, Library: cfg.Project.Library}
	}

	b := builder.New(
		builder.WithProject(project),
		builder.WithSink(diagnostic.Tee{diags, diagnostic.NewSlogSink(root.logger(cmd))}),
	)

	class, err := b.ParseDocument(resourcePath, content, cfg.Namespace, cfg.Advanced)
	if err != nil {
		return nil, nil, err
	}

	return class, diags, nil
}
