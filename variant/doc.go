// Package variant resolves a demo variant's source files into a flat,
// collision-free virtual directory tree suitable for exporting to an
// online sandbox.
//
// A variant is a main file plus a set of extra files declared by the
// relative-import paths that referenced them (e.g. "../helper.ts",
// "./utils/index.ts", "package.json"). The files originate from
// disparate real locations, or from no location at all, and the job of
// this package is to assign every file a single root-relative path such
// that all the original relative imports still resolve after the set is
// flattened into one project tree.
//
// Usage:
//
//	resolved := variant.AddPathsToVariant(variant.Code{
//		URL:      "file:///lib/components/checkbox/index.ts",
//		FileName: "index.ts",
//		ExtraFiles: map[string]variant.ExtraFile{
//			"../helper.ts": {Source: util.Ptr("...")},
//		},
//	})
//	// resolved.Path == "checkbox/index.ts"
//	// resolved.ExtraFiles["../helper.ts"].Path == "helper.ts"
//
// When a variant has no URL, back-navigation depth is satisfied by
// synthetic single-letter directories ("a", "b", "c", ...) so that every
// "../" in an extra-file key has a real directory level to climb
// through. Metadata files (package.json and friends) resolve under
// different rules than source dependencies; see CreatePathContext.
//
// Everything in this package is pure: no I/O, no shared state, safe for
// concurrent use.
package variant
