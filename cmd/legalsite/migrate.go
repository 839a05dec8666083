package main

import (
	"fmt"

	"github.com/alnah/go-legalsite/internal/logmigrate"
)

// runMigrate rewrites the logging calls of one Dart file.
func runMigrate(args []string, env *Environment) error {
	flags, positional, err := parseMigrateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		printMigrateUsage(env.Stderr)
		return fmt.Errorf("%w: expected exactly one .dart file", logmigrate.ErrNoSource)
	}
	path := positional[0]

	tag := flags.tag
	if tag == "" {
		cfg, err := loadConfig(flags.common.config, env)
		if err != nil {
			return err
		}
		tag = cfg.Migrate.Tag
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Migrating %s...\n", path)
	}

	res, err := logmigrate.MigrateFile(path, tag)
	if err != nil {
		return err
	}

	if !res.Changed {
		fmt.Fprintf(env.Stdout, "No changes needed for %s\n", path)
		return nil
	}

	fmt.Fprintf(env.Stdout, "✓ Successfully migrated %s\n", path)
	for _, c := range res.Changes {
		fmt.Fprintf(env.Stdout, "  - %s\n", c)
	}
	if tag == logmigrate.DefaultTag {
		fmt.Fprintf(env.Stdout, "\n⚠️  IMPORTANT: Please manually update '%s' tags with the actual service name!\n", tag)
	}
	return nil
}
