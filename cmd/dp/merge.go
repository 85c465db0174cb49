package main

import (
	"fmt"

	"github.com/docpatch-format/go-docpatch/encode"
	"github.com/docpatch-format/go-docpatch/mergepatch"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires 2 arguments, a merge patch, and a file to which to apply it", cli.ErrUsage)
	}
	overlay, err := getish(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	mergepatch.Merge(target, overlay)
	if err := encode.Encode(target, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
