package toolkit

import (
	"context"
	"fmt"

	"github.com/stackmason/toolloop"
)

type addArgs struct {
	X float64 `json:"x" jsonschema:"description=First number"`
	Y float64 `json:"y" jsonschema:"description=Second number"`
}

// Add returns the addition tool. Tool-use models routinely invoke it with
// num1/num2 instead of the declared x/y, so those aliases are registered for
// the reconciler.
func Add() *toolloop.Tool {
	fn := func(ctx context.Context, args map[string]any) (any, error) {
		x, okX := toNumber(args["x"])
		y, okY := toNumber(args["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("add requires numeric x and y")
		}
		return x + y, nil
	}

	return toolloop.NewTool(
		"add",
		"Add two numbers.",
		fn,
		toolloop.WithParameters(toolloop.ParameterSchema[addArgs]()),
		toolloop.WithAliases(map[string]string{"num1": "x", "num2": "y"}),
	)
}
