package main

import (
	"encoding/json"
	"fmt"

	"github.com/docpatch-format/go-docpatch/encode"
	"github.com/docpatch-format/go-docpatch/ir"
	"github.com/docpatch-format/go-docpatch/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	left, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	right, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var opts []libdiff.Option
	if cfg.ByLCS {
		opts = append(opts, libdiff.ByLCS())
	}
	patch := libdiff.Diff(left, right, opts...)
	if len(patch) == 0 {
		return nil
	}
	d, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	node, err := ir.Parse(d)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return cli.ExitCodeErr(1)
}
