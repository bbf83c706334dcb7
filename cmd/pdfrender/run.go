package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	pdfrender "github.com/alnah/go-pdfrender"
	"github.com/alnah/go-pdfrender/internal/config"
	"github.com/alnah/go-pdfrender/internal/hints"
	"github.com/alnah/go-pdfrender/internal/logging"
	"github.com/alnah/go-pdfrender/internal/pdfinfo"
)

// runMain executes one invocation and returns its exit code.
// Fatal errors are printed as a single line on stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if err := run(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run parses arguments, assembles the request from the folder bundle,
// submits it and writes the returned PDF.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, pos, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, usageLine)
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		printVersion(env.Stdout)
		return nil
	}
	if pos.folder == "" {
		return fmt.Errorf("%w (%s)", pdfrender.ErrFolderRequired, usageLine)
	}

	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flags, envCfg, cfg, env)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	for _, name := range unknownEnvVars(env.Environ()) {
		logger.Warn().Msgf("unknown environment variable %s", name)
	}

	baseDir, err := resolveBaseDir(flags.baseDir, envCfg.BaseDir, cfg.BaseDir, env.Executable)
	if err != nil {
		return err
	}
	logger.Debug().Str("dir", baseDir).Msg("base directory")

	bundle, err := pdfrender.ResolveFolder(baseDir, pos.folder)
	if err != nil {
		if errors.Is(err, pdfrender.ErrFolderNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForFolderNotFound(baseDir))
		}
		return err
	}
	logger = logger.With().Str("folder", bundle.Name).Logger()

	in, err := pdfrender.LoadInputs(bundle)
	if err != nil {
		if errors.Is(err, pdfrender.ErrTemplateMissing) || errors.Is(err, pdfrender.ErrDataMissing) {
			return fmt.Errorf("%w%s", err, hints.ForMissingFile(bundle.Name))
		}
		return err
	}
	switch {
	case in.OptionsErr != nil:
		logger.Warn().Err(in.OptionsErr).Msg("failed to parse PDF options, using defaults")
	case in.OptionsLoaded:
		logger.Info().Msgf("loaded PDF options from %s", bundle.OptionsPath)
	}

	apiKey, source, dotenvErr := resolveAPIKey(envCfg.APIKey, pos.apiKey, baseDir)
	if dotenvErr != nil {
		logger.Warn().Err(dotenvErr).Msg("ignoring .env file")
	}
	if apiKey == "" {
		logger.Warn().Msg("no RAPIDAPI_KEY provided in environment variables or as second argument")
		logger.Warn().Msg("the request might fail if the API requires authentication" + hints.ForMissingCredential())
	} else {
		logger.Debug().Str("source", source).Msg("using API key")
	}

	body, err := pdfrender.NewDocument(in).Encode()
	if err != nil {
		return err
	}

	client := newClient(cfg, env)
	logger.Info().Msgf("sending request to %s", client.Endpoint())
	logger.Debug().Int("bytes", len(body)).Msg("request document")

	pdf, err := client.Render(ctx, body, apiKey)
	if err != nil {
		return withRenderHint(err, client.Endpoint())
	}

	path, err := pdfrender.WriteOutput(bundle, pdf)
	if err != nil {
		return err
	}
	logOutput(logger, pdf)

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "PDF generated at: %s\n", path)
	}
	return nil
}

// loadConfig loads the config file named by the flag or, failing that, the
// environment. No name means defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the run logger. Priority for the level: --quiet or
// --verbose > PDFRENDER_LOG_LEVEL > config log.level.
func newLogger(flags *cliFlags, envCfg *envConfig, cfg *config.Config, env *Environment) (zerolog.Logger, io.Closer, error) {
	level, err := resolveLevel(flags, envCfg.LogLevel, cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger, closer := logging.New(logging.Options{
		Level:      level,
		Console:    env.Stderr,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})

	runID := ""
	if env.NewRunID != nil {
		runID = env.NewRunID()
	}
	logger = logger.With().Str(logging.RunField, runID).Logger()
	return logger, closer, nil
}

func resolveLevel(flags *cliFlags, envLevel, cfgLevel string) (zerolog.Level, error) {
	switch {
	case flags.quiet:
		return zerolog.WarnLevel, nil
	case flags.verbose:
		return zerolog.DebugLevel, nil
	case envLevel != "":
		level, err := logging.ParseLevel(envLevel)
		if err != nil {
			return level, fmt.Errorf("%w: %s: %v", ErrUsage, envLogLevel, err)
		}
		return level, nil
	default:
		// Config values were validated on load.
		level, _ := logging.ParseLevel(cfgLevel)
		return level, nil
	}
}

// newClient builds the render client from the service config.
func newClient(cfg *config.Config, env *Environment) *pdfrender.Client {
	userAgent := cfg.Service.UserAgent
	if userAgent == "" {
		userAgent = pdfrender.DefaultUserAgent + "/" + Version
	}
	opts := []pdfrender.ClientOption{
		pdfrender.WithEndpoint(cfg.Service.URL),
		pdfrender.WithServiceHost(cfg.Service.Host),
		pdfrender.WithUserAgent(userAgent),
	}
	if env.HTTPClient != nil {
		opts = append(opts, pdfrender.WithHTTPClient(env.HTTPClient))
	}
	return pdfrender.NewClient(opts...)
}

// withRenderHint appends the hint matching a render failure.
func withRenderHint(err error, endpoint string) error {
	var remote *pdfrender.RemoteError
	if errors.As(err, &remote) {
		if hint := hints.ForRemoteStatus(remote.StatusCode); hint != "" {
			return fmt.Errorf("%w%s", err, hint)
		}
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w%s", err, hints.ForTransport(endpoint))
}

// logOutput reports what the service returned. The bytes are written
// whether or not they parse; this is informational only.
func logOutput(logger zerolog.Logger, pdf []byte) {
	pages, err := pdfinfo.PageCount(pdf)
	if err != nil {
		logger.Debug().Err(err).Int("bytes", len(pdf)).Msg("wrote response body")
		return
	}
	logger.Debug().Int("pages", pages).Int("bytes", len(pdf)).Msg("wrote PDF")
}
