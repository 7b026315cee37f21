// Package parse parses libconfig-style configuration text into setting
// trees.
//
//	root, err := parse.Parse([]byte(`port = 8080;`))
//	root, err := parse.ParseFile("app.cfg", parse.WithIncludeDir("/etc/app"))
//
// Parsing expands @include directives, concatenates adjacent string
// literals, and aborts with a positioned error on the first violation.
package parse
