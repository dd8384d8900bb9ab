package variant

// PathContext is a derived, read-only summary of a variant used by the
// path assigner. A context either carries a concrete URL (HasURL true,
// with ActualURL and the URL-derived fields populated) or it does not;
// the boolean tag is the discriminant, never probe the URL fields
// directly.
type PathContext struct {
	// HasMetadata is true iff any extra file is flagged as metadata.
	HasMetadata bool

	// MaxBackNavigation is the greatest back-navigation depth required
	// by any extra-file key. Metadata entries are discounted by one
	// level (floor zero): when a metadata prefix directory exists it
	// supplies the extra level a metadata file climbs through, so a
	// balanced metadata key carries one more ".." than its source
	// siblings. Branches where no prefix absorbs that difference
	// recompute an undiscounted depth; see mainDirectories.
	MaxBackNavigation int

	// HasURL tags whether the variant carries a parseable absolute URL.
	HasURL bool

	// ActualURL is the original URL string. Valid only when HasURL.
	ActualURL string

	// URLDirectory is the ordered directory segments of the URL's path,
	// file name excluded. Valid only when HasURL.
	URLDirectory []string

	// RootLevel is the first URL directory segment. Valid only when
	// HasURL and the URL has at least one directory segment.
	RootLevel string

	// PathInwardFromRoot is the trailing MaxBackNavigation segments of
	// URLDirectory: the directories the resolution must walk back down
	// toward the variant. Set only when MaxBackNavigation is positive
	// and the URL supplies at least that many segments.
	PathInwardFromRoot []string
}

// CreatePathContext inspects a variant's extra-file keys and origin URL
// and computes the aggregate facts path assignment needs. It is pure
// and has no failure modes: a malformed URL degrades to a no-URL
// context rather than erroring.
func CreatePathContext(code Code) PathContext {
	var ctx PathContext

	for key, file := range code.ExtraFiles {
		back, _ := splitRelative(key)
		if file.Metadata {
			ctx.HasMetadata = true
			if back > 0 {
				back--
			}
		}
		if back > ctx.MaxBackNavigation {
			ctx.MaxBackNavigation = back
		}
	}

	if code.URL == "" {
		return ctx
	}
	dir, _, ok := parseOriginURL(code.URL)
	if !ok {
		return ctx
	}

	ctx.HasURL = true
	ctx.ActualURL = code.URL
	ctx.URLDirectory = dir
	if len(dir) > 0 {
		ctx.RootLevel = dir[0]
	}
	if ctx.MaxBackNavigation > 0 && len(dir) >= ctx.MaxBackNavigation {
		ctx.PathInwardFromRoot = dir[len(dir)-ctx.MaxBackNavigation:]
	}
	return ctx
}
