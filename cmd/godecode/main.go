package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/cli"
	"github.com/reoring/godecode/jsonschema"
)

func registry() *cli.Registry {
	var r cli.Registry
	r.Register("tree", "recursive labelled tree {value, forest}",
		Tree[godecode.Decoder[any, any]], Tree[*jsonschema.Schema])
	r.Register("package", "package manifest {name, version, dependencies}",
		Package[godecode.Decoder[any, any]], Package[*jsonschema.Schema])
	r.Register("shape", "shape tagged by kind: circle or rect",
		Shape[godecode.Decoder[any, any]], Shape[*jsonschema.Schema])
	return &r
}

func main() {
	err := cli.NewRootCommand(registry(), cli.StdIO()).Execute()
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrInvalid):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "godecode:", err)
		os.Exit(2)
	}
}
