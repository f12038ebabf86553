package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gidocs/urlmap/internal/config"
	"github.com/gidocs/urlmap/internal/logging"
	"github.com/gidocs/urlmap/internal/urlmap"
	"github.com/gidocs/urlmap/internal/version"
)

// Lookup command

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAMESPACE [PAGE]",
		Short: "Print the base URL of a namespace",
		Long: `Print the documentation base URL for NAMESPACE.

If PAGE is given, it is appended to the base URL to form the URL of a symbol
page. Namespaces are case-sensitive. An unknown namespace exits with status 1.`,
		Example: `  # Base URL of the GLib reference
  urlmap lookup GLib

  # URL of a symbol page
  urlmap lookup Gio class.File.html

  # Include an extra map file
  urlmap lookup Gtk --map gtk.yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args)
		},
	}
}

func runLookup(cmd *cobra.Command, opts *rootOptions, args []string) error {
	table, err := opts.table()
	if err != nil {
		return err
	}

	namespace := args[0]
	page := ""
	if len(args) > 1 {
		page = args[1]
	}

	base, found := table.Lookup(namespace)
	logging.LogLookup(namespace, base, found)

	resolved, err := table.Resolve(namespace, page)
	if err != nil {
		return err
	}
	return opts.printer(cmd).URL(resolved)
}

// List command

const (
	formatTable = "table"
	formatPlain = "plain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all namespaces and base URLs",
		Long: `List every entry of the effective table in definition order.

Formats:
  table  aligned columns with a header (default)
  plain  one "namespace<TAB>base_url" line per entry
  yaml   the map file format, as YAML
  json   the map file format, as JSON`,
		Example: `  urlmap list
  urlmap list --format json > urlmap.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format (table, plain, yaml, json)")
	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, format string) error {
	table, err := opts.table()
	if err != nil {
		return err
	}

	p := opts.printer(cmd)
	switch format {
	case formatTable:
		return p.Table(table.Entries())
	case formatPlain:
		return p.Plain(table.Entries())
	}

	f, err := urlmap.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}
	data, err := urlmap.Marshal(table, f)
	if err != nil {
		return err
	}
	return p.Raw(data)
}

// Check command

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate map files",
		Long: `Validate one or more map files.

Each file must be a list of [namespace, base_url] pairs with unique namespaces
and absolute base URLs ending in "/". Files that are valid on their own are
then merged with the built-in table (unless --no-builtin) to detect
namespaces defined in more than one place.`,
		Example: `  urlmap check gtk.yaml extra.json`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
}

func runCheck(cmd *cobra.Command, opts *rootOptions, paths []string) error {
	p := opts.printer(cmd)

	var (
		sources []urlmap.Source
		failed  int
	)
	for _, path := range paths {
		t, err := urlmap.LoadFile(path)
		if perr := p.CheckResult(path, entryCount(t), err); perr != nil {
			return perr
		}
		if err != nil {
			failed++
			continue
		}
		sources = append(sources, urlmap.Source{Name: path, Table: t})
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d map files are invalid", failed, len(paths))
	}

	base, err := opts.baseTable()
	if err != nil {
		return err
	}
	sources = append([]urlmap.Source{{Name: builtinSource, Table: base}}, sources...)
	if _, err := urlmap.MergeSources(sources...); err != nil {
		return fmt.Errorf("map files conflict: %w", err)
	}
	return nil
}

func entryCount(t *urlmap.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}

// Config command

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// Overrides the root hook: these commands must work when the
		// config file itself is invalid
		PersistentPreRunE: opts.setupWithoutConfig,
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("cannot access config file: %w", err)
			}

			if err := config.NewConfig().Save(path); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(pathCmd, initCmd)
	return cmd
}

// configPath returns --config, or the platform default location.
func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.GetConfigPath()
}

// Version command

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urlmap %s\n", version.Full())
		},
	}
}
