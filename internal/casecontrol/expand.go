package casecontrol

import "regexp"

var varRefRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandVars substitutes ${NAME} in template for every NAME present in vars.
// Unknown references and bare '$' text, which starts a comment in a deck,
// are left as written.
func ExpandVars(template string, vars map[string]string) string {
	return varRefRe.ReplaceAllStringFunc(template, func(ref string) string {
		if v, ok := vars[ref[2:len(ref)-1]]; ok {
			return v
		}
		return ref
	})
}
