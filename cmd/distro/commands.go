package distro

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arthur-debert/distro/pkg/commands/genconfig"
	"github.com/arthur-debert/distro/pkg/commands/newdistro"
	"github.com/arthur-debert/distro/pkg/config"
	"github.com/arthur-debert/distro/pkg/logging"
	"github.com/arthur-debert/distro/pkg/releases"
	"github.com/arthur-debert/distro/pkg/resolver"
	"github.com/arthur-debert/distro/pkg/templates"
	"github.com/arthur-debert/distro/pkg/ui"
	"github.com/arthur-debert/distro/pkg/vcs"
	"github.com/spf13/cobra"
)

type newOptions struct {
	siteName           string
	profileName        string
	profileDescription string
	coreVersion        string
	gitURL             string
	gitBinary          string
	noRepo             bool
	templateDir        string
	drupalVersion      string
	format             string
}

func newNewCmd(g *globalOptions) *cobra.Command {
	o := &newOptions{}

	cmd := &cobra.Command{
		Use:     "new <profile> [directory]",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, g, o, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.siteName, "site-name", "", MsgFlagSiteName)
	flags.StringVar(&o.profileName, "profile-name", "", MsgFlagProfileName)
	flags.StringVar(&o.profileDescription, "profile-description", "", MsgFlagProfileDescription)
	flags.StringVar(&o.coreVersion, "core-version", "", MsgFlagCoreVersion)
	flags.StringVar(&o.gitURL, "git-url", "", MsgFlagGitURL)
	flags.StringVar(&o.gitBinary, "git-binary", "", MsgFlagGitBinary)
	flags.BoolVar(&o.noRepo, "no-repo", false, MsgFlagNoRepo)
	flags.StringVar(&o.templateDir, "template-dir", "", MsgFlagTemplateDir)
	flags.StringVar(&o.drupalVersion, "drupal-version", "", MsgFlagDrupalVersion)
	flags.StringVar(&o.format, "format", "auto", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("template-dir")

	return cmd
}

func runNew(cmd *cobra.Command, g *globalOptions, o *newOptions, args []string) error {
	log := logging.GetLogger("cli.new")

	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	templateDir := o.templateDir
	if templateDir == "" {
		templateDir = cfg.Templates.Dir
	}

	var lookup resolver.VersionLookup
	if o.drupalVersion != "" {
		lookup = releases.Static(o.drupalVersion)
	} else {
		lookup = releases.NewClient(
			releases.WithBaseURL(cfg.Releases.URL),
			releases.WithHTTPClient(&http.Client{Timeout: cfg.Releases.Timeout}),
		)
	}

	gitBinary := o.gitBinary
	if gitBinary == "" {
		gitBinary = cfg.VCS.Binary
	}

	opts := newdistro.NewDistroOptions{
		Request: resolver.Request{
			Profile:            args[0],
			ProfileName:        o.profileName,
			ProfileDescription: o.profileDescription,
			SiteName:           o.siteName,
			CoreVersion:        o.coreVersion,
			GitURL:             o.gitURL,
		},
		NoRepo:    o.noRepo,
		DryRun:    g.dryRun,
		Templates: templates.Open(templateDir),
		Lookup:    lookup,
		Defaults:  cfg.Defaults,
		VCS: vcs.New(gitBinary, vcs.Options{
			Remote:        cfg.VCS.Remote,
			CommitMessage: cfg.VCS.CommitMessage,
			AuthorName:    cfg.VCS.AuthorName,
			AuthorEmail:   cfg.VCS.AuthorEmail,
		}),
	}
	if len(args) > 1 {
		opts.Directory = args[1]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Debug().Str("profile", opts.Request.Profile).Str("templates", templateDir).Msg("Creating distro")
	result, err := newdistro.NewDistro(ctx, opts)
	if result != nil {
		if renderErr := renderer.RenderResult(result); renderErr != nil && err == nil {
			err = renderErr
		}
	}
	return err
}

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Path:  g.configPath,
				Write: write,
			})
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
