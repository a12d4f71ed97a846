package main

// legacyFlags are the multi-letter flags that earlier versions accepted with a
// single dash. They are rewritten to their long forms, since single-dash flags
// can only have one letter
var legacyFlags = map[string]string{
	"-fqn":  "--fully-qualified-name",
	"-oc":   "--omit-constructors",
	"-om":   "--omit-methods",
	"-omod": "--omit-modifiers",
	"-sr":   "--relations",
}

// normalizeArgs rewrites legacy flags, leaving everything after a `--` alone
func normalizeArgs(args []string) []string {
	normalized := make([]string, len(args))
	for ind, arg := range args {
		if arg == "--" {
			copy(normalized[ind:], args[ind:])
			break
		}
		if long, ok := legacyFlags[arg]; ok {
			arg = long
		}
		normalized[ind] = arg
	}
	return normalized
}
