package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"wavicon/log"
	"wavicon/logo"
	"wavicon/wave"
)

var version = "dev"

const usage = `Usage: wavicon [command] [flags]

Commands:
  wave      render the animated wave frames
  logo      render the static logo
  preview   play the wave animation in the terminal (or a window with -gui)
  version   print version and exit

With no command both wave and logo are rendered with their defaults.
Run 'wavicon <command> -h' for the flags of a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := ""
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "":
		err = runAll(args, stdout, stderr)
	case "wave":
		err = runWave(args, stdout, stderr)
	case "logo":
		err = runLogo(args, stdout, stderr)
	case "preview":
		err = runPreview(args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "wavicon %s\n", version)
		return 0
	case "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// errUsage marks flag parsing failures; the flag package has already
// printed the details.
var errUsage = errors.New("usage error")

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	if name != "" {
		name = " " + name
	}
	fs := flag.NewFlagSet("wavicon"+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}
	return nil
}

// startLogging enables the diagnostics log when requested. Failing to open
// it is only a warning; rendering proceeds either way.
func startLogging(l logFlags, stderr io.Writer) func() {
	if !l.enabled && l.path == "" {
		return func() {}
	}
	dir, err := log.ResolveDir(l.path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to resolve log directory: %v\n", err)
		return func() {}
	}
	log.SetDir(dir)
	if err := log.Init(); err != nil {
		fmt.Fprintf(stderr, "Warning: could not init logging: %v\n", err)
		return func() {}
	}
	return log.Close
}

func runWave(args []string, stdout, stderr io.Writer) error {
	var lf logFlags
	var wf waveFlags
	fs := newFlagSet("wave", stderr)
	lf.register(fs)
	wf.register(fs)
	wf.registerOutput(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	defer startLogging(lf, stderr)()
	if err := generateWave(wf, stdout); err != nil {
		log.Errorf("wave: %v", err)
		return err
	}
	return nil
}

func generateWave(wf waveFlags, stdout io.Writer) error {
	start := time.Now()
	log.RunStart("wave", map[string]any{
		"size":       wf.cfg.Size,
		"frames":     wf.cfg.Frames,
		"amplitude":  wf.cfg.Amplitude,
		"wavelength": wf.cfg.WaveLength,
		"out":        wf.out,
	})

	if st, err := os.Stat(wf.out); err == nil && st.IsDir() {
		log.Info("reusing output directory " + wf.out)
	} else {
		log.Info("creating output directory " + wf.out)
	}
	paths, err := wf.cfg.Write(wf.out)
	for _, p := range paths {
		log.FileWritten(p, wf.cfg.Size)
	}
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Wave icons generated in the '%s' folder.", wf.out)
	if wf.gif != "" {
		warnOverwrite(wf.gif)
		if err := wf.cfg.WriteGIF(wf.gif, wf.delay); err != nil {
			return err
		}
		log.FileWritten(wf.gif, wf.cfg.Size)
		paths = append(paths, wf.gif)
		msg = fmt.Sprintf("Wave icons generated in the '%s' folder (animation: %s).", wf.out, wf.gif)
	}

	log.RunEnd("wave", len(paths), time.Since(start))
	confirm(stdout, msg)
	return nil
}

// warnOverwrite notes in the diagnostics log that path is about to be replaced.
func warnOverwrite(path string) {
	if _, err := os.Stat(path); err == nil {
		log.Warn("overwriting " + path)
	}
}

func runLogo(args []string, stdout, stderr io.Writer) error {
	var lf logFlags
	var lo logoFlags
	fs := newFlagSet("logo", stderr)
	lf.register(fs)
	lo.register(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	defer startLogging(lf, stderr)()
	if err := generateLogo(lo, stdout); err != nil {
		log.Errorf("logo: %v", err)
		return err
	}
	return nil
}

func generateLogo(lo logoFlags, stdout io.Writer) error {
	start := time.Now()
	log.RunStart("logo", map[string]any{
		"size":    lo.cfg.Size,
		"strokes": lo.cfg.Strokes,
		"width":   lo.cfg.Width,
		"out":     lo.out,
	})

	warnOverwrite(lo.out)
	if err := lo.cfg.Write(lo.out); err != nil {
		return err
	}
	log.FileWritten(lo.out, lo.cfg.Size)
	log.RunEnd("logo", 1, time.Since(start))
	confirm(stdout, "Saved "+lo.out)
	return nil
}

func runAll(args []string, stdout, stderr io.Writer) error {
	var lf logFlags
	fs := newFlagSet("", stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage+"\nFlags:\n"); fs.PrintDefaults() }
	lf.register(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	defer startLogging(lf, stderr)()

	wf := waveFlags{cfg: wave.Default(), out: wave.DefaultDir, delay: wave.DefaultDelay}
	if err := generateWave(wf, stdout); err != nil {
		log.Errorf("wave: %v", err)
		return err
	}
	if err := generateLogo(logoFlags{cfg: logo.Default(), out: logo.DefaultPath}, stdout); err != nil {
		log.Errorf("logo: %v", err)
		return err
	}
	return nil
}
