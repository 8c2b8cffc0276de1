package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"scaffer/internal/app"
	"scaffer/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "scaffer",
	Short: "Create projects from language templates",
	Long: `Scaffer creates a project directory from a stored language template, replacing
every {{project_name}} placeholder with the name of the new project. It can fetch a
matching .gitignore and initialize a git repository.

Templates live in the template directory of the configuration file and keep every
previous version of their files when they are updated.`,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project from a template",
	Long:  "Create a new project from a template. Missing values are asked for interactively.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildCreateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Create(cmd.Context(), request)
	},
}

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"template", "t"},
	Short:   "Manage project templates",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.ListTemplates(request)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new template",
	Long:  "Add a new template by entering its directories, files and start command.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.AddTemplate(request)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.RemoveTemplate(request)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a template",
	Long:  "Update the start command, directories or files of a template. Updated files keep their previous content as history.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.UpdateTemplate(request)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a template with highlighted file content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.ShowTemplate(request)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show every stored version of a template's files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.History(request)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildTemplateRequest(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return app.ShowConfig(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scaffer version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	templatesCmd.AddCommand(listCmd)
	templatesCmd.AddCommand(addCmd)
	templatesCmd.AddCommand(removeCmd)
	templatesCmd.AddCommand(updateCmd)
	templatesCmd.AddCommand(showCmd)
	templatesCmd.AddCommand(historyCmd)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default ~/.config/scaffer/config.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("template-dir", "", "template directory (overrides config)")
	rootCmd.PersistentFlags().String("theme", "", "color theme: default, dracula or mono (overrides config)")
	rootCmd.PersistentFlags().Bool("numbers", false, "enable number key selection in lists")

	// Create flags
	createCmd.Flags().StringP("language", "l", "", "template language")
	createCmd.Flags().StringP("name", "n", "", "project name")
	createCmd.Flags().StringP("path", "p", "", "directory to create the project in")
	createCmd.Flags().Bool("gitignore", false, "fetch a .gitignore for the language")
	createCmd.Flags().Bool("no-gitignore", false, "do not fetch a .gitignore")
	createCmd.Flags().Bool("git", false, "initialize a git repository in the project")
	createCmd.MarkFlagsMutuallyExclusive("gitignore", "no-gitignore")

	// Template flags
	listCmd.Flags().StringP("filter", "f", "", "only list templates containing this text")
	addCmd.Flags().StringP("language", "l", "", "language of the new template")
	addCmd.Flags().BoolP("clipboard", "b", false, "pre-fill file content with the clipboard")
	removeCmd.Flags().StringP("template", "t", "", "template to remove")
	updateCmd.Flags().StringP("language", "l", "", "template to update")
	showCmd.Flags().StringP("language", "l", "", "template to show")
	historyCmd.Flags().StringP("language", "l", "", "template to inspect")
}

// globalFlags holds the values of the persistent flags
type globalFlags struct {
	configPath   string
	templateDir  string
	theme        string
	verbose      bool
	numberSelect bool
}

func readGlobalFlags(cmd *cobra.Command) (*globalFlags, error) {
	g := &globalFlags{}
	var err error

	if g.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if g.templateDir, err = cmd.Flags().GetString("template-dir"); err != nil {
		return nil, fmt.Errorf("invalid template-dir flag: %w", err)
	}
	if g.theme, err = cmd.Flags().GetString("theme"); err != nil {
		return nil, fmt.Errorf("invalid theme flag: %w", err)
	}
	if g.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}
	if g.numberSelect, err = cmd.Flags().GetBool("numbers"); err != nil {
		return nil, fmt.Errorf("invalid numbers flag: %w", err)
	}

	return g, nil
}

// buildCreateRequest constructs a CreateRequest from command flags
func buildCreateRequest(cmd *cobra.Command) (*models.CreateRequest, error) {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return nil, err
	}

	request := models.NewCreateRequest()
	request.ConfigPath = g.configPath
	request.TemplateDir = g.templateDir
	request.Theme = g.theme
	request.Verbose = g.verbose
	request.NumberSelect = g.numberSelect

	if request.Language, err = cmd.Flags().GetString("language"); err != nil {
		return nil, fmt.Errorf("invalid language flag: %w", err)
	}
	if request.Name, err = cmd.Flags().GetString("name"); err != nil {
		return nil, fmt.Errorf("invalid name flag: %w", err)
	}
	if request.Path, err = cmd.Flags().GetString("path"); err != nil {
		return nil, fmt.Errorf("invalid path flag: %w", err)
	}
	if request.GitInit, err = cmd.Flags().GetBool("git"); err != nil {
		return nil, fmt.Errorf("invalid git flag: %w", err)
	}

	// Leave Gitignore unset unless one of the flags was given so that it is asked for
	switch {
	case cmd.Flags().Changed("gitignore") && cmd.Flags().Changed("no-gitignore"):
		return nil, fmt.Errorf("cannot use both --gitignore and --no-gitignore flags")
	case cmd.Flags().Changed("gitignore"):
		value, err := cmd.Flags().GetBool("gitignore")
		if err != nil {
			return nil, fmt.Errorf("invalid gitignore flag: %w", err)
		}
		request.Gitignore = &value
	case cmd.Flags().Changed("no-gitignore"):
		value, err := cmd.Flags().GetBool("no-gitignore")
		if err != nil {
			return nil, fmt.Errorf("invalid no-gitignore flag: %w", err)
		}
		value = !value
		request.Gitignore = &value
	}

	return request, nil
}

// buildTemplateRequest constructs a TemplateRequest from command flags. Only the
// flags defined on cmd are read.
func buildTemplateRequest(cmd *cobra.Command) (*models.TemplateRequest, error) {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return nil, err
	}

	request := models.NewTemplateRequest()
	request.ConfigPath = g.configPath
	request.TemplateDir = g.templateDir
	request.Theme = g.theme
	request.Verbose = g.verbose
	request.NumberSelect = g.numberSelect

	for _, name := range []string{"language", "template"} {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		if request.Identifier, err = cmd.Flags().GetString(name); err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
	}

	if cmd.Flags().Lookup("filter") != nil {
		if request.Filter, err = cmd.Flags().GetString("filter"); err != nil {
			return nil, fmt.Errorf("invalid filter flag: %w", err)
		}
	}

	if cmd.Flags().Lookup("clipboard") != nil {
		if request.FromClipboard, err = cmd.Flags().GetBool("clipboard"); err != nil {
			return nil, fmt.Errorf("invalid clipboard flag: %w", err)
		}
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
