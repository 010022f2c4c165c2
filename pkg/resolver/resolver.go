// Package resolver turns the user's options into the substitution mapping
// used to materialize a distro.
//
// Checks run in a fixed order and stop at the first failure: the profile
// identifier, then the core version's template branch, and only then the
// network lookup of the latest release.
package resolver

import (
	"context"
	"io/fs"
	"regexp"

	"github.com/arthur-debert/distro/pkg/config"
	"github.com/arthur-debert/distro/pkg/errors"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/arthur-debert/distro/pkg/manifest"
	"github.com/arthur-debert/distro/pkg/releases"
	"github.com/arthur-debert/distro/pkg/substitution"
	"github.com/arthur-debert/distro/pkg/templates"
)

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// VersionLookup finds the latest release for a core branch.
type VersionLookup interface {
	LatestVersion(ctx context.Context, coreBranch string) (string, error)
}

// Request carries the raw user input. Empty fields take their defaults.
type Request struct {
	Profile            string
	ProfileName        string
	ProfileDescription string
	SiteName           string
	CoreVersion        string
	GitURL             string
}

// Resolution is the outcome of resolving a Request.
type Resolution struct {
	Profile            string
	ProfileName        string
	ProfileDescription string
	SiteName           string
	CoreVersion        string
	CoreBranch         string
	GitURL             string
	DrupalVersion      string

	// Mapping is nil until the version is known.
	Mapping *substitution.Mapping
}

// WithVersion returns a copy of r with the Drupal version set and the
// substitution mapping built.
func (r Resolution) WithVersion(version string) *Resolution {
	r.DrupalVersion = version
	r.Mapping = substitution.New(map[substitution.Token]string{
		substitution.DrupalVersion:      version,
		substitution.GitURL:             r.GitURL,
		substitution.Profile:            r.Profile,
		substitution.ProfileName:        r.ProfileName,
		substitution.ProfileDescription: r.ProfileDescription,
		substitution.SiteName:           r.SiteName,
	})
	return &r
}

// Resolver resolves requests against a template root and a version lookup.
type Resolver struct {
	templates fs.FS
	lookup    VersionLookup
	defaults  config.Defaults
}

// New creates a Resolver. A nil template root uses the bundled templates and
// a nil lookup queries the drupal.org feed.
func New(root fs.FS, lookup VersionLookup, defaults config.Defaults) *Resolver {
	if root == nil {
		root = templates.Bundled()
	}
	if lookup == nil {
		lookup = releases.NewClient()
	}
	base := config.Default().Defaults
	if defaults.CoreVersion == "" {
		defaults.CoreVersion = base.CoreVersion
	}
	if defaults.GitURL == "" {
		defaults.GitURL = base.GitURL
	}
	return &Resolver{templates: root, lookup: lookup, defaults: defaults}
}

// ValidateProfile checks that profile is a machine name.
func ValidateProfile(profile string) error {
	if !profilePattern.MatchString(profile) {
		return errors.Newf(errors.ErrInvalidProfile,
			"profile name must only contain letters, numbers, and underscores: %q", profile).
			WithDetail("profile", profile)
	}
	return nil
}

// Prepare validates req and applies defaults without any network access.
// The returned resolution has no version and no mapping yet.
func (r *Resolver) Prepare(req Request) (*Resolution, error) {
	if err := ValidateProfile(req.Profile); err != nil {
		return nil, err
	}

	coreVersion := firstNonEmpty(req.CoreVersion, r.defaults.CoreVersion)
	branch := manifest.CoreBranch(coreVersion)
	if !templates.HasBranch(r.templates, branch) {
		return nil, errors.Newf(errors.ErrInvalidCoreVersion, "core version not valid: %s", coreVersion).
			WithDetail("branch", branch)
	}

	profileName := firstNonEmpty(req.ProfileName, req.Profile)
	res := &Resolution{
		Profile:            req.Profile,
		ProfileName:        profileName,
		ProfileDescription: firstNonEmpty(req.ProfileDescription, req.Profile),
		SiteName:           firstNonEmpty(req.SiteName, profileName),
		CoreVersion:        coreVersion,
		CoreBranch:         branch,
		GitURL:             req.GitURL,
	}
	if res.GitURL == "" {
		res.GitURL = DefaultGitURL(r.defaults.GitURL, req.Profile)
	}
	return res, nil
}

// LatestVersion asks the lookup for the newest release of branch.
func (r *Resolver) LatestVersion(ctx context.Context, branch string) (string, error) {
	return r.lookup.LatestVersion(ctx, branch)
}

// Resolve validates req, fetches the latest version and builds the mapping.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolution, error) {
	logger := logging.GetLogger("resolver")

	prepared, err := r.Prepare(req)
	if err != nil {
		return nil, err
	}

	version, err := r.LatestVersion(ctx, prepared.CoreBranch)
	if err != nil {
		return nil, err
	}

	res := prepared.WithVersion(version)
	logger.Debug().
		Str("profile", res.Profile).
		Str("branch", res.CoreBranch).
		Str("version", res.DrupalVersion).
		Int("tokens", res.Mapping.Len()).
		Msg("Resolved substitutions")
	return res, nil
}

// DefaultGitURL expands the {{ profile }} token in template.
func DefaultGitURL(template, profile string) string {
	return substitution.New(map[substitution.Token]string{
		substitution.Profile: profile,
	}).Apply(template)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
