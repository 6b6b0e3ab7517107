// Package validation checks flat string inputs (query parameters, route
// parameters, environment settings) against pipe-separated rules.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "kind":      r.URL.Query().Get("kind"),
//	    "singleton": r.URL.Query().Get("singleton"),
//	}, validation.Rules{
//	    "kind":      "nullable|in:class,instance",
//	    "singleton": "nullable|boolean",
//	})
//
//	if v.Fails() {
//	    // v.Errors() returns *Errors with Bag map[string][]string
//	    // JSON: {"errors": {"field": ["message1", "message2"]}}
//	}
//
// # Available Rules
//
//   - required: present and non-empty
//   - nullable: empty values skip the remaining rules
//   - integer: parseable as int
//   - boolean: anything strconv.ParseBool accepts
//   - max:n: at most n UTF-8 characters
//   - in:a,b,c: one of the comma-separated values
//   - identifier: letters, numbers, dots, dashes, underscores
//   - regex:pattern: matches the regexp
//
// Rules for a field stop at the first failure.
package validation
