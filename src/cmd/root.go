package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/xfetch/src/credentials"
	"github.com/apimgr/xfetch/src/display"
	"github.com/apimgr/xfetch/src/logging"
	"github.com/apimgr/xfetch/src/paths"
	"github.com/apimgr/xfetch/src/prompt"
	"github.com/apimgr/xfetch/src/xai"
)

var (
	// Build info - set via -ldflags at build time
	ProjectName = "xfetch"
	Version     = "dev"
	CommitID    = "unknown"
	BuildDate   = "unknown"

	// logCloser is the rotated log file opened by the last setup
	logCloser io.Closer
)

var errNoQuery = errors.New("a query or --template is required")

// options holds the parsed root flags
type options struct {
	cfgFile       string
	template      string
	handles       []string
	hours         int
	keyword       string
	topic         string
	url           string
	web           bool
	model         string
	raw           bool
	listTemplates bool
	noColor       bool
}

// NewRootCmd builds the xfetch command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   ProjectName + " [query]",
		Short: "Query X (Twitter) through the xAI Responses API",
		Long: `xfetch sends a natural-language query, or a prompt built from a template,
to Grok with the x_search tool enabled and prints the response text.`,
		Example: `  xfetch "What are people saying about Go 1.25?"
  xfetch "Summarize the latest posts" --handle @golang --hours 24
  xfetch "Semiconductor industry trends" --web
  xfetch --template user_recent --handle @openai --hours 12
  xfetch --template topic_search --keyword "AI regulation"
  xfetch --list-templates`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.template, "template", "t", "", "prompt template ("+strings.Join(prompt.Names(), ", ")+")")
	flags.StringArrayVar(&opts.handles, "handle", nil, fmt.Sprintf("X handle to search (repeatable, at most %d used)", xai.MaxHandles))
	flags.IntVar(&opts.hours, "hours", 0, "only search posts from the last N hours")
	flags.StringVar(&opts.keyword, "keyword", "", "value for the template's {keyword}")
	flags.StringVar(&opts.topic, "topic", "", "value for the template's {topic}")
	flags.StringVar(&opts.url, "url", "", "value for the template's {url}")
	flags.BoolVarP(&opts.web, "web", "w", false, "also enable web search")
	flags.StringVarP(&opts.model, "model", "m", xai.DefaultModel, "Grok model to use")
	flags.BoolVar(&opts.raw, "raw", false, "print the whole API response as JSON")
	flags.BoolVar(&opts.listTemplates, "list-templates", false, "list the available templates and exit")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && logCloser != nil {
		slog.Error("command failed", "error", err)
	}
	closeLog()

	if err != nil {
		reportError(os.Stderr, err)
		return ExitCode(err)
	}
	return 0
}

// setup loads configuration and opens the log file
func setup(cmd *cobra.Command, opts *options) error {
	if err := initConfig(opts.cfgFile); err != nil {
		return err
	}

	closeLog()
	_, closer, err := logging.Init(logging.FromViper())
	if err != nil {
		// Non-fatal - keep going without a log file
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not initialize log file: %v\n", err)
		slog.SetDefault(logging.Discard())
		return nil
	}
	logCloser = closer
	return nil
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

// initConfig reads the YAML config file and binds XFETCH_* variables
func initConfig(cfgFile string) error {
	viper.Reset()

	viper.SetConfigFile(paths.ResolveConfigPath(cfgFile))
	viper.SetEnvPrefix(strings.ToUpper(ProjectName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("model", xai.DefaultModel)
	viper.SetDefault("web", false)
	viper.SetDefault("api.base_url", xai.DefaultBaseURL)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.max_size", 10)
	viper.SetDefault("logging.max_files", 5)
	viper.SetDefault("output.color", "auto")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	if opts.listTemplates {
		return printTemplates(out, display.ColorEnabled(out, colorMode(opts)))
	}

	if cmd.Flags().Changed("hours") {
		if opts.hours <= 0 {
			return &UsageError{Err: fmt.Errorf("--hours must be a positive number of hours, got %d", opts.hours)}
		}
		if int64(opts.hours) > xai.MaxHours {
			return &UsageError{Err: fmt.Errorf("--hours must be at most %d, got %d", xai.MaxHours, opts.hours)}
		}
	}

	query, err := buildQuery(cmd, opts, args)
	if err != nil {
		return err
	}

	apiKey, err := credentials.APIKey(envFiles()...)
	if err != nil {
		return err
	}

	xai.ProjectName = ProjectName
	xai.Version = Version
	client := xai.NewClient(viper.GetString("api.base_url"), apiKey)

	result, err := client.Fetch(cmd.Context(), query, fetchOptions(cmd, opts))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)
	return nil
}

// buildQuery returns the positional query, or the formatted template
// when --template is set
func buildQuery(cmd *cobra.Command, opts *options, args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))

	if opts.template == "" {
		if query == "" {
			return "", &UsageError{Err: errNoQuery}
		}
		return query, nil
	}

	built, err := prompt.Build(opts.template, templateParams(cmd, opts, query))
	if err != nil {
		return "", &UsageError{Err: err}
	}
	return built, nil
}

// templateParams maps flags onto template parameter names
func templateParams(cmd *cobra.Command, opts *options, query string) map[string]string {
	params := make(map[string]string)

	if len(opts.handles) > 0 {
		params["handle"] = opts.handles[0]
		if len(opts.handles) > 1 {
			params["handle1"] = opts.handles[0]
			params["handle2"] = opts.handles[1]
		}
	}
	if cmd.Flags().Changed("hours") {
		params["hours"] = strconv.Itoa(opts.hours)
	}
	if opts.keyword != "" {
		params["keyword"] = opts.keyword
	}
	if opts.topic != "" {
		params["topic"] = opts.topic
	}
	if opts.url != "" {
		params["url"] = opts.url
	}
	if query != "" {
		params["query"] = query
	}

	return params
}

// fetchOptions resolves flags over config values
func fetchOptions(cmd *cobra.Command, opts *options) xai.FetchOptions {
	fo := xai.FetchOptions{
		Model:           viper.GetString("model"),
		EnableWebSearch: viper.GetBool("web"),
		Raw:             opts.raw,
	}
	if cmd.Flags().Changed("model") {
		fo.Model = opts.model
	}
	if cmd.Flags().Changed("web") {
		fo.EnableWebSearch = opts.web
	}
	if len(opts.handles) > 0 {
		fo.Handles = opts.handles
	}
	if cmd.Flags().Changed("hours") {
		hours := opts.hours
		fo.Hours = &hours
	}
	return fo
}

// envFiles lists the dotenv files searched for the API key, in order
func envFiles() []string {
	return []string{".env", paths.EnvFile()}
}

func colorMode(opts *options) string {
	if opts.noColor {
		return "never"
	}
	return viper.GetString("output.color")
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}
