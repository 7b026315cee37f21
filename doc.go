// Package libconfig reads, queries, mutates and writes libconfig-style
// configuration documents.
//
//	cfg, err := libconfig.FromFile("app.cfg")
//	if err != nil {
//	    return err
//	}
//	port, err := cfg.LookupInt("server.port")
//
// The document is a typed tree of named settings; see the setting
// package for tree operations, parse for parsing, and encode for the
// textual form.
package libconfig
