package distro

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Scaffold Drupal installation profile projects"
	MsgNewShort        = "Create a new distro from the template tree"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose            = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun             = "Resolve everything and show what would be created, without writing"
	MsgFlagConfig             = "Configuration file (default $XDG_CONFIG_HOME/distro/config.toml)"
	MsgFlagFormat             = "Output format: auto, term, text or json"
	MsgFlagSiteName           = "Site name (defaults to the profile name)"
	MsgFlagProfileName        = "Human readable profile name (defaults to the profile)"
	MsgFlagProfileDescription = "Profile description (defaults to the profile)"
	MsgFlagCoreVersion        = "Drupal core major version (default from config, \"7\")"
	MsgFlagGitURL             = "Remote git URL (default http://git.drupal.org/project/<profile>.git)"
	MsgFlagGitBinary          = "Use this git executable instead of the built-in implementation"
	MsgFlagNoRepo             = "Do not initialize a git repository"
	MsgFlagTemplateDir        = "Read templates from this directory instead of the bundled tree"
	MsgFlagDrupalVersion      = "Use this Drupal version instead of looking up the latest release"
	MsgFlagWrite              = "Write the config file instead of printing it"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNoCommand  = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
