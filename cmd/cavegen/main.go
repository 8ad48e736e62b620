// Command cavegen generates cave dungeons and shows them.
//
//	cavegen generate [-config file] [-out dir] [-seed n] [-floors n]
//	cavegen view     [-config file] [-seed n]
//	cavegen serve    [-config file] [-seed n] [-addr host:port]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/cavern/config"
	"github.com/katalvlaran/cavern/dungeon"
	"github.com/katalvlaran/cavern/server"
	"github.com/katalvlaran/cavern/viewer"
)

const usage = `usage: cavegen <command> [flags]

commands:
  generate  write dungeon.json, dungeon.msgpack and dungeon.gif
  view      browse a fresh dungeon in the terminal
  serve     preview a fresh dungeon over HTTP
`

var errUsage = errors.New("cavegen: bad usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run dispatches a subcommand. It is main without the process exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file")
	seed := fs.Int64("seed", 0, "parent seed (overrides config)")
	floors := fs.Int("floors", 0, "floor count (overrides config)")
	out := fs.String("out", "", "output directory (generate)")
	addr := fs.String("addr", "", "listen address (serve)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Dungeon.Seed = *seed
	}
	if *floors != 0 {
		cfg.Dungeon.Floors = *floors
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	log := cfg.Logger(stderr)

	switch cmd {
	case "generate":
		return generate(ctx, cfg, log, stdout)
	case "view":
		cfg.Output.Frames = false
		return view(ctx, cfg, log)
	case "serve":
		cfg.Output.Frames = false
		return serve(ctx, cfg, log)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return errUsage
	}
}

func build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*dungeon.Dungeon, error) {
	return dungeon.New(ctx, cfg.Dungeon.Height, cfg.Dungeon.Width, uint16(cfg.Dungeon.Floors),
		cfg.DungeonType(), cfg.DungeonOptions(log)...)
}

func generate(ctx context.Context, cfg *config.Config, log *slog.Logger, stdout io.Writer) error {
	d, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	dir := cfg.Output.Dir
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cavegen: %w", err)
	}

	if cfg.Output.JSON {
		if err = writeWith(filepath.Join(dir, "dungeon.json"), d.ToJSON); err != nil {
			return err
		}
	}
	if cfg.Output.MsgPack {
		if err = writeWith(filepath.Join(dir, "dungeon.msgpack"), d.ToMsgPack); err != nil {
			return err
		}
	}
	if cfg.Output.GIF {
		if err = writeGIF(filepath.Join(dir, "dungeon.gif"), d); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "wrote %d floors to %s\n", len(d.Floors), dir)

	return nil
}

func writeWith(path string, encode func() ([]byte, error)) error {
	data, err := encode()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cavegen: %w", err)
	}

	return nil
}

func writeGIF(path string, d *dungeon.Dungeon) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cavegen: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cavegen: %w", cerr)
		}
	}()

	return d.ToGIF(f)
}

func view(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	d, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cavegen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("cavegen: %w", err)
	}
	defer screen.Fini()

	v, err := viewer.New(screen, d, log)
	if err != nil {
		return err
	}
	v.Run()

	return nil
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	d, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	s, err := server.New(d, log)
	if err != nil {
		return err
	}

	return s.ListenAndServe(ctx, cfg.Server.Addr)
}
