package commands

// Shorthands assigns every verb its shortest prefix that is neither a
// shorthand handed out earlier nor a full verb name. Verbs are processed in
// the given order. The result maps shorthand to verb.
func Shorthands(verbs []string) map[string]string {
	full := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		full[v] = struct{}{}
	}

	res := make(map[string]string, len(verbs))
	for _, v := range verbs {
		short := v
		for i := 1; i < len(v); i++ {
			prefix := v[:i]
			if _, taken := res[prefix]; taken {
				continue
			}
			if _, isVerb := full[prefix]; isVerb {
				continue
			}
			short = prefix
			break
		}
		res[short] = v
	}

	return res
}
