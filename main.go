package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"prototype-creator/ai"
	"prototype-creator/export"
	"prototype-creator/repo"
	"prototype-creator/store"
	"prototype-creator/supabase"
	"prototype-creator/ui"
	"prototype-creator/utils"
	"prototype-creator/viewer"
)

var (
	version = "0.1.0"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Prototype Creator v%s\n", version)
		os.Exit(0)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.GetLogPath())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting Prototype Creator v%s", version)

	// Backend credentials come from .env files or the OS environment
	env := utils.LoadEnv(logger)

	n8nBaseURL := env.Get("N8N_BASE_URL")
	n8nWebhookPath := env.GetOrElse("N8N_WEBHOOK_PATH", "webhook/chat")
	n8nAPIKey := env.Get("N8N_API_KEY")
	supabaseURL := env.Get("SUPABASE_URL")
	supabaseKey := env.Get("SUPABASE_ANON_KEY")
	openaiKey := env.Get("OPENAI_API_KEY")
	openaiModel := env.Get("OPENAI_MODEL")

	logger.Info("Backend config: n8n=%s supabase=%s n8n_key=%s supabase_key=%s openai_key=%s",
		n8nBaseURL, supabaseURL, maskSecret(n8nAPIKey), maskSecret(supabaseKey), maskSecret(openaiKey))

	if supabaseURL == "" {
		logger.Warn("SUPABASE_URL is not set; the gallery will not load")
	}

	// Load or create default configuration
	var config *utils.Config
	var actualConfigPath string
	if *configPath != "" {
		actualConfigPath = *configPath
		config, err = utils.LoadConfig(actualConfigPath)
		if err != nil {
			logger.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
	} else {
		actualConfigPath, err = utils.EnsureDefaultConfig()
		if err != nil {
			logger.Error("Failed to create default config: %v", err)
			os.Exit(1)
		}
		logger.Info("Using config file: %s", actualConfigPath)

		config, err = utils.LoadConfig(actualConfigPath)
		if err != nil {
			logger.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
	}

	// Local preference store (favorites, theme, language)
	prefs, err := store.Open(config.Data.DBPath, logger)
	if err != nil {
		logger.Error("Failed to open preference store: %v", err)
		os.Exit(1)
	}
	defer prefs.Close()

	logger.Info("Preference store opened: %s", config.Data.DBPath)

	settings := store.NewSettings(prefs)
	settings.SeedDefaults(config.UI.Theme == "dark", config.UI.Language)
	favorites := store.NewFavorites(prefs)

	backend := supabase.NewClient(supabaseURL, supabaseKey, logger)
	prototypes := repo.NewPrototypeRepository(backend, favorites)
	chatStore := repo.NewChatSessionStore()

	// Prefer the webhook workflow; fall back to direct OpenAI
	var aiService ai.Service
	switch {
	case n8nBaseURL != "":
		aiService = ai.NewN8NService(n8nBaseURL, n8nWebhookPath, n8nAPIKey, logger)
	case openaiKey != "":
		aiService = ai.NewOpenAIService(openaiKey, openaiModel, logger)
	default:
		logger.Warn("No AI backend configured; chat will fail until one is set")
		aiService = ai.NewN8NService(n8nBaseURL, n8nWebhookPath, n8nAPIKey, logger)
	}
	logger.Info("AI backend: %s", aiService.Name())

	// EXPORT_DIR bypasses the save dialog and writes straight to a directory;
	// unset, the UI installs its platform save dialog.
	var exporter export.Exporter
	if dir := env.Get("EXPORT_DIR"); dir != "" {
		exporter = export.NewFileExporter(dir, logger)
		logger.Info("Exports go directly to %s", dir)
	}
	preview := viewer.NewBrowserViewer(logger)

	// Create and run application
	app := ui.NewApp(config, actualConfigPath, settings, prototypes, chatStore, aiService, exporter, preview, logger)

	logger.Info("Application started")
	app.Run()
	logger.Info("Application stopped")
}

// maskSecret hides all but the last four characters of a credential.
func maskSecret(s string) string {
	if s == "" {
		return "(unset)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 4) + s[len(s)-4:]
}
