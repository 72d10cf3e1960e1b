// Command engine is the terminal idle RPG's CLI entry point: it loads
// config, constructs (or restores) a Core State Facade, and drives its
// tick/input loop until interrupted.
//
// Grounded on the teacher's cmd/loginserver and cmd/gameserver main
// packages: a signal-driven cancellable context, slog configured from
// the loaded config's log level before anything else runs, and an
// errgroup coordinating the process's concurrent goroutines. The
// Facade's own tick()/handle_input() stay single-threaded per spec.md
// §5 — errgroup here only coordinates the two outer goroutines
// (ticker, stdin reader) that feed it.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/la2go/internal/config"
	"github.com/udisondev/la2go/internal/engine/core"
	"github.com/udisondev/la2go/internal/persist"
	"github.com/udisondev/la2go/internal/persist/pgstore"
)

const defaultConfigPath = "config/engine.yaml"

// errQuitRequested unwinds the errgroup when the player types "quit",
// cancelling gctx so the tick loop's own goroutine exits too; run()
// treats it as a clean shutdown rather than a fatal error.
var errQuitRequested = errors.New("quit requested")

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and verbose event logging")
	seed := flag.Uint64("seed", 0, "RNG seed; 0 picks a random seed")
	configPath := flag.String("config", defaultConfigPath, "path to engine.yaml")
	savePath := flag.String("save", "", "path to a gob save file to resume from")
	characterName := flag.String("name", "Adventurer", "character name for a freshly rolled save")
	passphrase := flag.String("passphrase", "", "integrity passphrase protecting the save file")
	useDB := flag.Bool("db", false, "use the PostgreSQL save-slot backend instead of --save")
	characterID := flag.String("character-id", "", "character ID to load from the database backend (--db); empty rolls a fresh character")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, runOpts{
		debug:         *debug,
		seed:          *seed,
		configPath:    *configPath,
		savePath:      *savePath,
		characterName: *characterName,
		passphrase:    *passphrase,
		useDB:         *useDB,
		characterID:   *characterID,
	}); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type runOpts struct {
	debug         bool
	seed          uint64
	configPath    string
	savePath      string
	characterName string
	passphrase    string
	useDB         bool
	characterID   string
}

func run(ctx context.Context, opts runOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	if opts.debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("engine starting", "log_level", cfg.LogLevel, "tick_interval_ms", cfg.TickIntervalMS)

	var store *pgstore.Store
	if opts.useDB {
		store, err = pgstore.Open(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("opening database backend: %w", err)
		}
		defer store.Close()
	}

	state, err := loadOrCreateState(ctx, opts, store)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	facade := core.NewFacade(state, seed)
	slog.Info("facade ready", "character_id", state.CharacterID, "character_name", state.CharacterName, "seed", seed)

	if opts.debug {
		dumpDebugSnapshot(facade)
	}

	haven := core.HavenBonuses{
		OfflineXPPercent: cfg.Haven.OfflineXPPercent,
		XPGainPercent:    cfg.Haven.XPGainPercent,
		DiscoveryPercent: cfg.Haven.DiscoveryPercent,
	}
	report := facade.ProcessOfflineProgression(time.Now().Unix(), haven)
	if report.XPGained > 0 {
		slog.Info("offline progression applied", "xp_gained", report.XPGained, "total_level_ups", report.TotalLevelUps)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runTickLoop(gctx, facade, cfg.TickIntervalMS, opts.debug)
	})

	g.Go(func() error {
		return runInputLoop(gctx, facade)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuitRequested) {
		return fmt.Errorf("engine loop: %w", err)
	}

	if opts.useDB {
		if err := saveStateToDB(ctx, store, facade); err != nil {
			return err
		}
		slog.Info("save written", "backend", "postgres", "character_id", facade.State.CharacterID)
	} else if opts.savePath != "" {
		if err := saveStateToFile(opts.savePath, opts.passphrase, facade); err != nil {
			return err
		}
		slog.Info("save written", "backend", "file", "path", opts.savePath)
	}

	return nil
}

// loadOrCreateState restores a character from the database backend
// (--db) or the local gob file (--save), or rolls a fresh one if
// neither locates an existing save.
func loadOrCreateState(ctx context.Context, opts runOpts, store *pgstore.Store) (*core.GameState, error) {
	if opts.useDB {
		if opts.characterID == "" {
			return core.New(core.NewCharacterID(), opts.characterName), nil
		}
		slot, err := store.Load(ctx, opts.characterID)
		if err != nil {
			return nil, fmt.Errorf("loading character %s from database: %w", opts.characterID, err)
		}
		state, err := persist.Load(slot.Payload)
		if err != nil {
			return nil, fmt.Errorf("decoding database save for %s: %w", opts.characterID, err)
		}
		return state, nil
	}

	if opts.savePath == "" {
		return core.New(core.NewCharacterID(), opts.characterName), nil
	}

	data, err := os.ReadFile(opts.savePath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no save found, rolling a fresh character", "path", opts.savePath)
			return core.New(core.NewCharacterID(), opts.characterName), nil
		}
		return nil, fmt.Errorf("reading save %s: %w", opts.savePath, err)
	}

	if opts.passphrase != "" {
		if err := verifyPassphraseSidecar(opts.savePath, opts.passphrase); err != nil {
			return nil, err
		}
	}

	state, err := persist.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading save %s: %w", opts.savePath, err)
	}
	return state, nil
}

func saveStateToFile(path, passphrase string, facade *core.Facade) error {
	payload, err := persist.Serialize(facade.State)
	if err != nil {
		return fmt.Errorf("serializing save: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("writing save %s: %w", path, err)
	}
	if passphrase != "" {
		if err := writePassphraseSidecar(path, passphrase); err != nil {
			return err
		}
	}
	return nil
}

func saveStateToDB(ctx context.Context, store *pgstore.Store, facade *core.Facade) error {
	payload, err := persist.Serialize(facade.State)
	if err != nil {
		return fmt.Errorf("serializing save: %w", err)
	}
	if err := store.Save(ctx, facade.State.CharacterID, facade.State.CharacterName, payload); err != nil {
		return fmt.Errorf("saving character %s to database: %w", facade.State.CharacterID, err)
	}
	return nil
}

// passphraseSidecarPath is where writePassphraseSidecar/
// verifyPassphraseSidecar keep a save file's bcrypt integrity hash,
// alongside the gob payload itself.
func passphraseSidecarPath(savePath string) string {
	return savePath + ".passhash"
}

func writePassphraseSidecar(savePath, passphrase string) error {
	hash, err := persist.HashPassphrase(passphrase)
	if err != nil {
		return fmt.Errorf("hashing save passphrase: %w", err)
	}
	if err := os.WriteFile(passphraseSidecarPath(savePath), []byte(hash), 0o600); err != nil {
		return fmt.Errorf("writing passphrase sidecar: %w", err)
	}
	return nil
}

// verifyPassphraseSidecar checks savePath's sidecar hash, if one exists
// (a save written without --passphrase has none, so a first-time load
// with a passphrase has nothing to check against yet).
func verifyPassphraseSidecar(savePath, passphrase string) error {
	hash, err := os.ReadFile(passphraseSidecarPath(savePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading passphrase sidecar: %w", err)
	}
	if !persist.VerifyPassphrase(string(hash), passphrase) {
		return fmt.Errorf("save %s: incorrect passphrase", savePath)
	}
	return nil
}

// dumpDebugSnapshot prints a GameState's DebugSnapshot to stdout, used
// at --debug startup and on the InputDebugToggle token.
func dumpDebugSnapshot(facade *core.Facade) {
	out, err := persist.DumpYAML(facade.State)
	if err != nil {
		slog.Error("debug snapshot failed", "err", err)
		return
	}
	fmt.Fprintln(os.Stdout, "--- debug snapshot ---")
	fmt.Fprint(os.Stdout, out)
}

func runTickLoop(ctx context.Context, facade *core.Facade, intervalMS int, debug bool) error {
	if intervalMS <= 0 {
		intervalMS = 100
	}
	interval := time.Duration(intervalMS) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			events := facade.Tick(delta, now.Unix(), now.UnixMilli())
			logEvents(events, debug)
		}
	}
}

func runInputLoop(ctx context.Context, facade *core.Facade) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			token, isQuit := parseInputLine(line)
			events := facade.HandleInput(token)
			logEvents(events, true)
			if token.Kind == core.InputDebugToggle {
				dumpDebugSnapshot(facade)
			}
			if isQuit {
				return errQuitRequested
			}
		}
	}
}

// parseInputLine maps a single stdin line onto a classified InputToken.
// These command words are illustrative, not a wire protocol (spec.md §6
// treats InputToken as UI-agnostic): any frontend (TUI, test harness) is
// free to produce tokens directly instead of going through text.
func parseInputLine(line string) (core.InputToken, bool) {
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "up", "w":
		return core.InputToken{Kind: core.InputUp}, false
	case "down", "s":
		return core.InputToken{Kind: core.InputDown}, false
	case "left", "a":
		return core.InputToken{Kind: core.InputLeft}, false
	case "right", "d":
		return core.InputToken{Kind: core.InputRight}, false
	case "select", "enter", "":
		return core.InputToken{Kind: core.InputSelect}, false
	case "cancel", "esc":
		return core.InputToken{Kind: core.InputCancel}, false
	case "prestige":
		return core.InputToken{Kind: core.InputPrestige}, false
	case "haven":
		return core.InputToken{Kind: core.InputHavenToggle}, false
	case "achievements":
		return core.InputToken{Kind: core.InputAchievementsToggle}, false
	case "challenges", "tab":
		return core.InputToken{Kind: core.InputTabToggleChallenges}, false
	case "debug":
		return core.InputToken{Kind: core.InputDebugToggle}, false
	case "quit", "q":
		return core.InputToken{Kind: core.InputQuit}, true
	default:
		return core.InputToken{Kind: core.InputOther, Rune: firstRune(line)}, false
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func logEvents(events []core.Event, debug bool) {
	for _, e := range events {
		if debug {
			slog.Debug("event", "kind", e.Kind.String())
			continue
		}
		slog.Info("event", "kind", e.Kind.String())
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
