package main

import (
	"fmt"

	"github.com/alnah/go-legalsite/internal/checklist"
)

// runChecklist prints the translation checklist after confirmation.
func runChecklist(args []string, env *Environment) error {
	flags, positional, err := parseChecklistFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, positional[0])
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	setIfNotEmpty(&cfg.Input.Dir, flags.input)

	langs, err := languagesFromConfig(cfg.Languages)
	if err != nil {
		return err
	}

	c, err := checklist.Build(checklist.Params{
		SourceDir:         cfg.Input.Dir,
		ContactEmail:      cfg.Translation.ContactEmail,
		ReferenceLanguage: cfg.Translation.ReferenceLanguage,
		Languages:         langs,
		EffectiveDates:    cfg.Translation.EffectiveDates,
	})
	if err != nil {
		return err
	}

	checklist.WriteHeader(env.Stdout, c)

	if !flags.yes {
		ok, err := checklist.Confirm(env.Stdin, env.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(env.Stdout, "Aborted.")
			return nil
		}
	}

	checklist.WriteReport(env.Stdout, c)
	return nil
}
