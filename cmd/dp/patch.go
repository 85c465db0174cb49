package main

import (
	"encoding/json"
	"fmt"

	"github.com/docpatch-format/go-docpatch/encode"
	"github.com/docpatch-format/go-docpatch/libpatch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Unsafe {
		err = libpatch.ApplyUnsafe(target, p)
	} else {
		err = libpatch.Apply(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encode.Encode(target, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// getPatch accepts the patch argument in either i/o format; a yaml
// patch is normalized through its json serialization before decoding.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (libpatch.Patch, error) {
	node, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	d, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("internal error: %w", err)
	}
	return libpatch.DecodePatch(d)
}
