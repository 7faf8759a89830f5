package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hearthvox/hearthvox/pkg/hearthvox"
	"github.com/hearthvox/hearthvox/pkg/logging"
	"github.com/hearthvox/hearthvox/pkg/runner"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to subsystem config")
	text := flag.String("text", "", "text to synthesize")
	voice := flag.String("voice", "", "voice override")
	instructions := flag.String("instructions", "", "style directive prepended to the text")
	out := flag.String("out", "speech.wav", "output file")
	flag.Parse()

	if strings.TrimSpace(*text) == "" {
		fmt.Fprintln(os.Stderr, "usage: hearthvox -text \"...\" [-voice NAME] [-instructions \"...\"] [-out file.wav]")
		os.Exit(2)
	}

	cfg, err := hearthvox.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	runner.PrintBanner()

	// the API key may come from the environment instead of the config file
	if cfg.Engine.Settings == nil {
		cfg.Engine.Settings = map[string]any{}
	}
	if key, _ := cfg.Engine.Settings["api_key"].(string); key == "" {
		if env := os.Getenv("GEMINI_API_KEY"); env != "" {
			cfg.Engine.Settings["api_key"] = env
		}
	}

	reg := hearthvox.NewEngineRegistry()
	eng, err := hearthvox.BuildEngine(reg, cfg)
	if err != nil {
		slog.Error("engine init failed", "error", err)
		os.Exit(1)
	}
	defer eng.Close()

	entity := hearthvox.BuildEntity(eng, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	options := map[string]any{}
	if *voice != "" {
		options["voice"] = *voice
	}
	if *instructions != "" {
		options["instructions"] = *instructions
	}

	format, data, err := entity.GetTTSAudio(ctx, *text, entity.DefaultLanguage(), options)
	if err != nil {
		slog.Error("synthesis failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		slog.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("audio written",
		slog.String("path", *out),
		slog.String("format", format),
		slog.Int("bytes", len(data)),
		slog.String("engine", eng.Name()))
}
