// Package query evaluates JSONPath expressions against a generated palette,
// laid out the way `generate --format json` prints it.
package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
)

// Result reports the outcome of one named expression.
type Result struct {
	Name    string
	Success bool
	Message string
}

// Tree is doc in the generic shape JSONPath walks: keys follow the json tags
// of palette.Document.
func Tree(doc palette.Document) map[string]any {
	slots := make([]any, 0, len(doc.Slots))
	for _, s := range doc.Slots {
		slots = append(slots, map[string]any{
			"slot": s.Slot,
			"name": s.Name,
			"hex":  string(s.Hex),
		})
	}

	roles := make(map[string]any, len(doc.Roles))
	for r, h := range doc.Roles {
		roles[string(r)] = string(h)
	}

	return map[string]any{
		"base":  doc.Base,
		"slots": slots,
		"roles": roles,
	}
}

// Apply evaluates rules (name -> JSONPath expression) against doc. A failing
// rule is reported in its Result and the others still run.
func Apply(doc palette.Document, rules map[string]string) (map[string]string, []Result) {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tree := Tree(doc)
	values := make(map[string]string, len(rules))
	results := make([]Result, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		if expr == "" {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("query %q: empty jsonpath expression", name),
			})
			continue
		}

		val, err := jsonpath.Get(expr, tree)
		if err != nil {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("query %q (%s): no such palette field (base, slots[0..9].slot|name|hex, roles.<role>): %v", name, expr, err),
			})
			continue
		}

		s, ok := format(val)
		if !ok {
			results = append(results, Result{
				Name:    name,
				Message: fmt.Sprintf("query %q (%s): matched no palette value", name, expr),
			})
			continue
		}

		values[name] = s
		results = append(results, Result{
			Name:    name,
			Success: true,
			Message: fmt.Sprintf("%s = %s", name, s),
		})
	}

	return values, results
}

// ParseRules turns "name=expr" or bare "expr" arguments into rules. A bare
// expression is its own name.
func ParseRules(args []string) map[string]string {
	rules := make(map[string]string, len(args))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if name, expr, ok := strings.Cut(a, "="); ok && !strings.HasPrefix(a, "$") {
			rules[strings.TrimSpace(name)] = strings.TrimSpace(expr)
			continue
		}
		rules[a] = a
	}
	return rules
}

// format prints a matched value: hex strings and names as is, slot numbers
// in decimal, several matches or a whole object as JSON.
func format(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case int:
		return strconv.Itoa(t), true
	case []any:
		if len(t) == 0 {
			return "", false
		}
		if len(t) == 1 {
			return format(t[0])
		}
		b, err := json.Marshal(t)
		return string(b), err == nil
	case map[string]any:
		b, err := json.Marshal(t)
		return string(b), err == nil && len(t) > 0
	default:
		return "", false
	}
}
