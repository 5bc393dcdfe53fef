package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/grifflee/speedreading"
)

const rateStep = 50

type config struct {
	inPath    string
	clipboard bool
	wpm       int
	color     string
	cells     int
	anchor    int
	inPlace   bool
	gifPath   string
	debug     bool
	stats     bool
	ocrLang   string
	logLevel  string
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "usage: %s --in input.(txt|pdf|html) [--wpm 300]\n%v\n", os.Args[0], err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.logLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "speedread failed: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, getenv func(string) string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("speedread", flag.ContinueOnError)
	fs.StringVar(&cfg.inPath, "in", "", "input file (.txt, .md, .pdf, .html, or an image with -tags ocr)")
	fs.BoolVar(&cfg.clipboard, "clipboard", false, "read the text from the system clipboard")
	fs.IntVar(&cfg.wpm, "wpm", envInt(getenv, "SPEEDREAD_WPM", speedreading.DefaultRate), "words per minute")
	fs.StringVar(&cfg.color, "color", envOr(getenv, "SPEEDREAD_COLOR", speedreading.DefaultAnchorColor), "anchor colour")
	fs.IntVar(&cfg.cells, "cells", speedreading.DefaultGrid().Cells, "width of the word grid in cells")
	fs.IntVar(&cfg.anchor, "anchor", speedreading.DefaultGrid().Anchor, "zero-based grid cell holding the anchor")
	fs.BoolVar(&cfg.inPlace, "inplace", true, "redraw each word over the previous one")
	fs.StringVar(&cfg.gifPath, "gif", "", "write an animated GIF instead of playing")
	fs.BoolVar(&cfg.debug, "debug", false, "pretty-print tokens and layouts as JSON and exit")
	fs.BoolVar(&cfg.stats, "stats", false, "print reading statistics and exit")
	fs.StringVar(&cfg.ocrLang, "ocr-lang", "", "Tesseract languages for image input, e.g. eng+deu")
	fs.StringVar(&cfg.logLevel, "log-level", envOr(getenv, "SPEEDREAD_LOG_LEVEL", "warn"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.inPath == "" && !cfg.clipboard {
		return config{}, errors.New("one of --in or --clipboard is required")
	}
	if cfg.inPath != "" && cfg.clipboard {
		return config{}, errors.New("--in and --clipboard are mutually exclusive")
	}
	if cfg.wpm < speedreading.MinRate || cfg.wpm > speedreading.MaxRate {
		return config{}, fmt.Errorf("--wpm %d: %w (%d..%d)", cfg.wpm, speedreading.ErrRateOutOfRange, speedreading.MinRate, speedreading.MaxRate)
	}
	if err := (speedreading.Grid{Cells: cfg.cells, Anchor: cfg.anchor}).Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	doc, err := loadDocument(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("loaded document", "name", doc.Name, "format", doc.Format, "words", len(doc.Tokens))

	if cfg.debug {
		pretty, err := json.MarshalIndent(doc.Node(cfg.wpm), "", "  ")
		if err != nil {
			return fmt.Errorf("debug: marshal document: %w", err)
		}
		fmt.Fprintln(stdout, string(pretty))
		return nil
	}
	if cfg.stats {
		printStats(stdout, doc.Stats(cfg.wpm))
		return nil
	}
	if cfg.gifPath != "" {
		return writeGIF(cfg.gifPath, doc, cfg.wpm, logger)
	}
	return play(ctx, cfg, doc, stdin, stdout, logger)
}

func loadDocument(ctx context.Context, cfg config) (*speedreading.Document, error) {
	reg := speedreading.NewRegistry()
	if cfg.ocrLang != "" {
		reg.Replace(speedreading.Image, speedreading.NewImageLoader(cfg.ocrLang))
	}

	if cfg.clipboard {
		src, err := speedreading.ClipboardSource(speedreading.SystemClipboard())
		if err != nil {
			return nil, err
		}
		return speedreading.Load(ctx, src, reg)
	}
	return speedreading.Open(ctx, cfg.inPath, reg)
}

func printStats(w io.Writer, s speedreading.Stats) {
	fmt.Fprintf(w, "words:          %d\n", s.Words)
	fmt.Fprintf(w, "characters:     %d\n", s.Characters)
	fmt.Fprintf(w, "average length: %.2f\n", s.AverageWordLength)
	fmt.Fprintf(w, "longest word:   %s\n", s.LongestWord)
	fmt.Fprintf(w, "reading time:   %s at %d wpm\n", s.Duration, s.Rate)
}

func writeGIF(path string, doc *speedreading.Document, wpm int, logger *slog.Logger) error {
	fr, err := speedreading.NewFrameRenderer(speedreading.DefaultFrameOptions())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := fr.EncodeGIF(f, doc.Frames(), wpm); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	logger.Info("wrote gif", "frames", len(doc.Tokens), "path", path)
	return nil
}

// play runs the reader until playback ends, the user stops it or ctx is done.
// Commands are read one per line from stdin.
func play(ctx context.Context, cfg config, doc *speedreading.Document, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	renderer := speedreading.NewTerminalRenderer(stdout,
		speedreading.WithGrid(speedreading.Grid{Cells: cfg.cells, Anchor: cfg.anchor}),
		speedreading.WithAnchorColor(cfg.color),
		speedreading.WithInPlace(cfg.inPlace),
	)

	finished := make(chan struct{}, 1)
	player := speedreading.NewPlayer(renderer,
		speedreading.WithRate(cfg.wpm),
		speedreading.WithLogger(logger),
		speedreading.WithStateListener(func(_, to speedreading.State) {
			if to != speedreading.Idle {
				return
			}
			select {
			case finished <- struct{}{}:
			default:
			}
		}),
	)
	if err := player.Load(doc.Tokens); err != nil {
		return err
	}
	if err := player.Start(); err != nil {
		return err
	}

	commands := make(chan string)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			commands <- strings.TrimSpace(scanner.Text())
		}
	}()

	defer func() {
		if cfg.inPlace {
			fmt.Fprintln(stdout)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			player.Stop()
			return renderer.Err()
		case <-finished:
			logger.Info("finished reading", "name", doc.Name, "words", len(doc.Tokens))
			return renderer.Err()
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if quit := handleCommand(player, cmd, logger); quit {
				player.Stop()
				return renderer.Err()
			}
		}
	}
}

// handleCommand applies one interactive command and reports whether the
// reader should exit.
func handleCommand(player *speedreading.Player, cmd string, logger *slog.Logger) bool {
	var err error
	switch cmd {
	case "":
		return false
	case "p", "pause":
		err = player.Pause()
	case "r", "resume":
		err = player.Resume()
	case "+", "faster":
		err = player.SetRate(player.Rate() + rateStep)
	case "-", "slower":
		err = player.SetRate(player.Rate() - rateStep)
	case "s", "stop", "q", "quit":
		return true
	default:
		if wpm, convErr := strconv.Atoi(cmd); convErr == nil {
			err = player.SetRate(wpm)
			break
		}
		logger.Warn("unknown command; use p, r, +, -, s or a wpm number", "command", cmd)
	}
	if err != nil {
		logger.Warn("command failed", "command", cmd, "error", err)
	}
	return false
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
