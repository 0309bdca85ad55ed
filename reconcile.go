package toolloop

// ReconcileArguments maps the model's argument keys onto the tool's declared
// parameter names. The model's keys are untrusted input: for a tool that
// registered aliases, aliased keys are rewritten, keys matching a declared
// parameter pass through, everything else is dropped, and an alias the model
// omitted resolves to nil. Tools without aliases get their arguments back
// unmodified.
func ReconcileArguments(tool *Tool, args map[string]any) map[string]any {
	if len(tool.aliases) == 0 {
		return args
	}

	out := make(map[string]any, len(args)+len(tool.aliases))
	for key, value := range args {
		if actual, ok := tool.aliases[key]; ok {
			out[actual] = value
			continue
		}
		if _, ok := tool.def.Parameters[key]; ok {
			out[key] = value
		}
	}
	for supplied, actual := range tool.aliases {
		if _, present := args[supplied]; present {
			continue
		}
		if _, set := out[actual]; !set {
			out[actual] = nil
		}
	}
	return out
}
