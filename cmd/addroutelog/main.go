// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"addroutelog/augment"
	"addroutelog/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	dry bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.dry, "dry", false, "Print the changes that would be made, without modifying the file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: usage: addroutelog [flags] <filepath>", cli.ErrInvalidArgs)
	}
	path := env.Args[0]

	var n int
	if a.dry {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, count := augment.Transform(src)
		n = count
		if n > 0 {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(src), string(out), false)
			env.Logf("%s", dmp.DiffPrettyText(diffs))
		}
	} else {
		count, err := augment.File(ctx, path)
		if err != nil {
			return err
		}
		n = count
	}

	switch {
	case n > 0 && a.dry:
		fmt.Fprintf(env.Stdout, "Would add error logging to %d catch blocks in %s\n", n, path)
	case n > 0:
		fmt.Fprintf(env.Stdout, "Added error logging to %d catch blocks in %s\n", n, path)
	default:
		fmt.Fprintf(env.Stdout, "No changes needed for %s\n", path)
	}
	fmt.Fprintf(env.Stdout, "\nTotal modifications: %d\n", n)

	return nil
}
