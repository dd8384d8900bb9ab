package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codelift/sandpath/config"
	"github.com/codelift/sandpath/errors"
	"github.com/codelift/sandpath/logger"
	"github.com/codelift/sandpath/manifest"
	"github.com/codelift/sandpath/variant"
)

var checkMetadataPrefix string

// CheckCmd reports flat-path collisions without printing the full
// resolution, for CI pipelines that only care about validity.
var CheckCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Report flat-path collisions in a manifest",
	Long: `Check resolves every variant in the manifest and reports any two
files that would land on the same flat path. Exits non-zero when a
collision is found, so it can gate a CI pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVar(&checkMetadataPrefix, "metadata-prefix", "", "Default metadata prefix for variants that do not set one")
}

func runCheck(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	log := logger.ComponentLogger("check")

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	prefix := checkMetadataPrefix
	if prefix == "" {
		prefix = cfg.Resolve.MetadataPrefix
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	total := 0
	for _, name := range m.Names() {
		code := m[name]
		if code.MetadataPrefix == "" && prefix != "" {
			code.MetadataPrefix = prefix
		}
		wp := variant.AddPathsToVariant(code)

		for _, group := range variant.Collisions(wp) {
			total++
			fmt.Printf("%s: %s collide on %q\n",
				name, describeKeys(group), collisionPath(wp, group))
		}
	}

	log.Infow("manifest checked",
		logger.FieldManifest, manifestPath,
		logger.FieldCount, len(m),
		logger.FieldCollisions, total)

	if total > 0 {
		return errors.Newf("%d path collision(s) detected", total)
	}
	fmt.Println("No collisions found")
	return nil
}

func describeKeys(group []string) string {
	names := make([]string, len(group))
	for i, k := range group {
		if k == variant.MainFileKey {
			names[i] = "(main)"
		} else {
			names[i] = k
		}
	}
	return strings.Join(names, ", ")
}
