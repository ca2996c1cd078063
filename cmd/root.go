package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/infrastructure/sqlite"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/router"
	"github.com/zjrosen/signup/internal/tracing"
	"github.com/zjrosen/signup/internal/ui/styles"
)

func init() {
	// Query the terminal background before Bubble Tea starts so the OSC 11
	// response cannot land in a text input.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix         = "SIGNUP"
	localConfigPath   = ".signup/config.yaml"
	defaultLogFile    = "debug.log"
	shutdownTimeout   = 5 * time.Second
	defaultConfigName = "config"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	// cfgPath is the file the configuration was read from, if any.
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "A terminal client for creating an account",
	Long: `A terminal user interface for registering a new account with the
registration service. Fields are validated as you type; failures are shown
in a dialog and every attempt is kept in a local journal.`,
	Version:       version,
	SilenceUsage:  true,
	RunE:          runApp,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug.log and enable the log panel (ctrl+x)")
	rootCmd.Flags().String("url", "", "registration service base URL")
	rootCmd.Flags().Duration("timeout", 0, "give up on the registration call after this long")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("service.base_url", rootCmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("service.timeout", rootCmd.Flags().Lookup("timeout"))
}

func initConfig() error {
	var err error
	cfg, cfgPath, err = loadConfig(viper.GetViper(), cfgFile)
	return err
}

// loadConfig reads configuration into v and unmarshals it. When no file is
// found anywhere a default one is written to .signup/config.yaml.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return config.Config{}, "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		v.SetConfigFile(explicit)
	} else if _, err := os.Stat(localConfigPath); err == nil {
		v.SetConfigFile(localConfigPath)
	} else {
		if dir := config.Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				v.SetConfigFile(localConfigPath)
				_ = v.ReadInConfig()
			}
		default:
			return config.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, "", fmt.Errorf("parsing config: %w", err)
	}
	if c.History.Path == "" {
		c.History.Path = config.DefaultHistoryPath()
	}
	if c.Tracing.FilePath == "" {
		c.Tracing.FilePath = config.DefaultTracesFilePath()
	}
	return c, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("service.base_url", d.Service.BaseURL)
	v.SetDefault("service.register_path", d.Service.RegisterPath)
	v.SetDefault("service.timeout", d.Service.Timeout)
	v.SetDefault("form.gate_policy", d.Form.GatePolicy)
	v.SetDefault("form.password_check", d.Form.PasswordCheck)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("debug", false)
}

// runtime is everything runApp wires together, plus how to release it.
type runtime struct {
	model    app.Model
	provider *tracing.Provider
	db       *sqlite.DB
}

func (r *runtime) Close() error {
	var errs []error
	if err := r.model.Close(); err != nil {
		errs = append(errs, err)
	}
	if r.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down tracing: %w", err))
		}
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing history: %w", err))
		}
	}
	return errors.Join(errs...)
}

// buildRuntime validates c and constructs the application from it.
func buildRuntime(ctx context.Context, c config.Config) (*runtime, error) {
	if err := config.Validate(c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: c.Theme.Preset,
		Colors: c.Theme.FlattenedColors(),
	}); err != nil {
		return nil, fmt.Errorf("applying theme: %w", err)
	}

	gate, _ := c.Form.Gate()
	check, _ := c.Form.PasswordCheckMode()

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      c.Tracing.Enabled,
		Exporter:     c.Tracing.Exporter,
		FilePath:     c.Tracing.FilePath,
		OTLPEndpoint: c.Tracing.OTLPEndpoint,
		SampleRate:   c.Tracing.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	rt := &runtime{provider: provider}

	registrar, err := registration.NewHTTPRegistrar(c.Service.BaseURL, c.Service.RegisterPath,
		registration.WithTracer(provider.Tracer()))
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	r := router.New(router.PathRegister)
	opts := []registration.Option{registration.WithTimeout(c.Service.Timeout)}
	if c.History.Enabled {
		db, err := sqlite.NewDB(c.History.Path)
		if err != nil {
			// The journal is optional; registration works without it.
			log.ErrorErr(log.CatDB, "Opening history failed, journal disabled", err, "path", c.History.Path)
		} else {
			rt.db = db
			opts = append(opts, registration.WithJournal(db.AttemptRepository()))
		}
	}

	log.Info(log.CatConfig, "Registration endpoint", "url", registrar.Endpoint(),
		"timeout", c.Service.Timeout, "gate", gate, "history", rt.db != nil)

	rt.model = app.New(app.Config{
		Router:        r,
		Coordinator:   registration.NewCoordinator(registrar, r, opts...),
		Gate:          form.Gate{Policy: gate},
		PasswordCheck: check,
		Context:       ctx,
		Debug:         c.Debug,
	})
	return rt, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfg.Debug || os.Getenv(envPrefix+"_DEBUG") != "" {
		cfg.Debug = true
		cleanup, err := log.Init(defaultLogFile)
		if err != nil {
			return err
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting signup", "version", version, "config", cfgPath)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	p := tea.NewProgram(
		rt.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		rt.model = m
	}

	if closeErr := rt.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// historyPath resolves the journal location for subcommands.
func historyPath() string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return config.DefaultHistoryPath()
}

// configFilePath is where `config set` writes.
func configFilePath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Clean(localConfigPath)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
