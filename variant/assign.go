package variant

import "strings"

// AddPathsToVariant assigns a flat virtual path to a variant's main
// file and to every extra file, so that the whole set can be flattened
// into one project tree with every original relative import still
// resolving. It is pure and deterministic; no input shape errors.
//
// The main file's resolved directory anchors every extra-file
// resolution: an extra file walks up from that directory by its key's
// net back-navigation and appends the forward remainder. The main
// directory itself is built from the trailing segments of the origin
// URL when one exists, topped up with synthetic single-letter
// directories ("a", "b", ...) for any depth the URL cannot supply.
func AddPathsToVariant(code Code) WithPaths {
	ctx := CreatePathContext(code)
	fileName := effectiveFileName(code)

	out := WithPaths{
		URL:            code.URL,
		FileName:       fileName,
		Source:         code.Source,
		MetadataPrefix: code.MetadataPrefix,
	}

	if len(code.ExtraFiles) == 0 {
		// Nothing to navigate back from: the main file keeps its bare
		// name, even under a metadata prefix.
		out.Path = fileName
		if fileName != "" {
			out.ExtraFiles = map[string]ResolvedFile{}
		}
		return out
	}

	if code.MetadataPrefix != "" {
		if normalized, remap, trimmed := normalizeMetadataDepths(code); trimmed {
			return restoreKeys(AddPathsToVariant(normalized), remap)
		}
	}

	anchor := mainDirectories(code, ctx)
	if fileName != "" {
		out.Path = joinSegments(anchor, fileName)
	}

	out.ExtraFiles = make(map[string]ResolvedFile, len(code.ExtraFiles))
	for key, file := range code.ExtraFiles {
		out.ExtraFiles[key] = ResolvedFile{
			Source:   file.Source,
			Metadata: file.Metadata,
			Path:     calculateExtraFilePath(key, anchor),
		}
	}
	return out
}

// effectiveFileName resolves the main file's base name: the declared
// FileName, or the trailing segment of the origin URL.
func effectiveFileName(code Code) string {
	if code.FileName != "" {
		return code.FileName
	}
	if code.URL != "" {
		if _, base, ok := parseOriginURL(code.URL); ok {
			return base
		}
	}
	return ""
}

// scanBackDepths computes the raw (undiscounted) maximum back-navigation
// depth per file class.
func scanBackDepths(code Code) (sourceMax, metadataMax int, hasSource, hasMetadata bool) {
	for key, file := range code.ExtraFiles {
		back, _ := splitRelative(key)
		if file.Metadata {
			hasMetadata = true
			if back > metadataMax {
				metadataMax = back
			}
		} else {
			hasSource = true
			if back > sourceMax {
				sourceMax = back
			}
		}
	}
	return sourceMax, metadataMax, hasSource, hasMetadata
}

// mainDirectories computes the directory segments of the main file's
// resolved path. Every extra-file resolution anchors on these segments,
// so they must supply enough depth for the deepest back-navigation any
// file requires.
func mainDirectories(code Code, ctx PathContext) []string {
	sourceMax, metadataMax, hasSource, hasMetadata := scanBackDepths(code)

	if code.MetadataPrefix != "" {
		// Metadata depths are balanced by the time we get here
		// (AddPathsToVariant renormalizes first), so the discounted
		// context depth is exactly the depth needed inside the prefix;
		// the prefix itself supplies the level metadata files escape
		// through.
		inner := fillDirectories(ctx.MaxBackNavigation, ctx)
		return append(splitDirectories(code.MetadataPrefix), inner...)
	}

	depth := sourceMax
	switch {
	case hasMetadata && !hasSource:
		// Metadata-only: a single parent level is enough for metadata
		// files to escape past the main file's directory.
		if metadataMax > 0 {
			depth = 1
		}
	case hasMetadata && metadataMax > sourceMax:
		// No prefix absorbs the metadata discount, so the main path
		// must carry the metadata files' full depth. Recompute over a
		// copy with the metadata flags cleared to get the undiscounted
		// maximum.
		depth = CreatePathContext(flattenMetadata(code)).MaxBackNavigation
	}
	return fillDirectories(depth, ctx)
}

// fillDirectories produces depth directory segments, preferring the
// trailing segments of the real URL directory and synthesizing
// single-letter placeholders for whatever depth the URL cannot supply.
// Synthetic segments come first, so the leftmost generated segment is
// always "a".
func fillDirectories(depth int, ctx PathContext) []string {
	if depth <= 0 {
		return nil
	}
	if depth == ctx.MaxBackNavigation && len(ctx.PathInwardFromRoot) == depth {
		return append([]string(nil), ctx.PathInwardFromRoot...)
	}

	var available []string
	if ctx.HasURL {
		available = ctx.URLDirectory
	}
	take := depth
	if take > len(available) {
		take = len(available)
	}
	dirs := syntheticDirectories(depth - take)
	return append(dirs, available[len(available)-take:]...)
}

// calculateExtraFilePath resolves one extra-file key against the main
// file's resolved directory: walk up by the key's net back-navigation,
// clamped at the virtual root, then append the forward remainder.
func calculateExtraFilePath(key string, anchor []string) string {
	back, forward := splitRelative(key)
	if back > len(anchor) {
		back = len(anchor)
	}
	segments := make([]string, 0, len(anchor)+len(forward))
	segments = append(segments, anchor[:len(anchor)-back]...)
	segments = append(segments, forward...)
	return strings.Join(segments, "/")
}

// flattenMetadata returns a copy of the variant with every metadata
// flag cleared, so a fresh context yields undiscounted back-navigation.
func flattenMetadata(code Code) Code {
	files := make(map[string]ExtraFile, len(code.ExtraFiles))
	for key, file := range code.ExtraFiles {
		file.Metadata = false
		files[key] = file
	}
	code.ExtraFiles = files
	return code
}

// normalizeMetadataDepths reconciles unbalanced metadata back-navigation
// under a metadata prefix. A balanced metadata key carries exactly one
// more ".." than the deepest source key; entries exceeding that are
// trimmed down to the expected depth and the caller re-resolves the
// synthesized variant. remap translates normalized keys back to the
// originals. Trimming is skipped for an entry whose trimmed key would
// collide with another key, keeping the key set lossless.
func normalizeMetadataDepths(code Code) (normalized Code, remap map[string]string, trimmed bool) {
	sourceMax, _, _, hasMetadata := scanBackDepths(code)
	if !hasMetadata {
		return code, nil, false
	}
	expected := sourceMax + 1

	files := make(map[string]ExtraFile, len(code.ExtraFiles))
	remap = make(map[string]string, len(code.ExtraFiles))
	for key, file := range code.ExtraFiles {
		if back, forward := splitRelative(key); file.Metadata && back > expected {
			candidate := relativeKey(expected, forward)
			_, taken := code.ExtraFiles[candidate]
			_, dup := files[candidate]
			if !taken && !dup {
				files[candidate] = file
				remap[candidate] = key
				trimmed = true
				continue
			}
		}
		files[key] = file
		remap[key] = key
	}
	if !trimmed {
		return code, nil, false
	}
	code.ExtraFiles = files
	return code, remap, true
}

// restoreKeys maps a resolution computed on a normalized variant back
// onto the original extra-file keys.
func restoreKeys(resolved WithPaths, remap map[string]string) WithPaths {
	files := make(map[string]ResolvedFile, len(resolved.ExtraFiles))
	for key, file := range resolved.ExtraFiles {
		original, ok := remap[key]
		if !ok {
			original = key
		}
		files[original] = file
	}
	resolved.ExtraFiles = files
	return resolved
}
