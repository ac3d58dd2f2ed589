package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lixenwraith/digital-rain/config"
	"github.com/lixenwraith/digital-rain/content"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/render"
	"github.com/lixenwraith/digital-rain/terminal"
)

var (
	colorFlag      = flag.String("color", "green", "Color theme")
	charsFlag      = flag.String("chars", content.DefaultSet, "Character set")
	speedFlag      = flag.Float64("speed", 5.0, "Fall speed factor (1.0-50.0)")
	densityFlag    = flag.Float64("density", 0.7, "Drop density factor (0.1-3.0)")
	backgroundFlag = flag.String("background-color", "", "Terminal background as R,G,B (e.g., 0,0,0); auto-detected if unset")
	listFlag       = flag.Bool("list", false, "List available options and exit")
	fadeFlag       = flag.String("fade", "quadratic", "Trail fade curve: quadratic, linear")
)

func main() {
	flag.Parse()

	if *listFlag {
		printOptions()
		return
	}

	cfg, detectBackground, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "digital-rain: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, detectBackground); err != nil {
		fmt.Fprintf(os.Stderr, "digital-rain: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig validates flags into an engine config. The second return
// reports whether background auto-detection should run.
func buildConfig() (config.Config, bool, error) {
	theme, err := render.ParseTheme(*colorFlag)
	if err != nil {
		return config.Config{}, false, err
	}

	charset, ok := content.CharSet(*charsFlag)
	if !ok {
		return config.Config{}, false, fmt.Errorf("unknown character set %q (try --list)", *charsFlag)
	}

	var curve render.FadeCurve
	switch *fadeFlag {
	case "quadratic":
		curve = render.FadeQuadratic
	case "linear":
		curve = render.FadeLinear
	default:
		return config.Config{}, false, fmt.Errorf("unknown fade curve %q", *fadeFlag)
	}

	cfg := config.Config{
		SpeedFactor:   *speedFlag,
		DensityFactor: *densityFlag,
		Charset:       charset,
		Theme:         theme,
		Background:    terminal.RGBBlack,
		FadeCurve:     curve,
	}

	detect := true
	if *backgroundFlag != "" {
		bg, err := config.ParseRGB(*backgroundFlag)
		if err != nil {
			return config.Config{}, false, err
		}
		cfg.Background = bg
		detect = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, err
	}
	return cfg, detect, nil
}

// run owns terminal setup and teardown around the animation loop
func run(cfg config.Config, detectBackground bool) error {
	// Background query must happen before the terminal enters raw mode
	if detectBackground {
		if bg, ok := terminal.DetectBackground(); ok {
			cfg.Background = bg
			fmt.Fprintf(os.Stderr, "Detected terminal background color: RGB(%d, %d, %d)\n", bg.R, bg.G, bg.B)
		} else {
			fmt.Fprintln(os.Stderr, "Could not detect terminal background color, assuming black")
		}
	}

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	// Restore the terminal before reporting a crash so the message is
	// readable, then re-panic for the stack trace
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "digital-rain crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	width, height := term.Size()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	drops, err := engine.NewDropEngine(width, height, cfg, rng)
	if err != nil {
		return err
	}

	palette := render.NewPalette(cfg.Theme, cfg.Background, cfg.FadeCurve)
	frame := render.NewFrameBuffer(width, height, cfg.Background)

	sched := engine.NewScheduler(term, drops, frame, palette, cfg.SpeedFactor, cfg.DensityFactor)
	return sched.Run()
}

// printOptions lists the available flag values, for --list
func printOptions() {
	fmt.Println("Available options:")
	fmt.Printf("\nColors: %s\n", strings.Join(render.ThemeNames(), ", "))
	fmt.Printf("\nCharacter Sets: %s\n", strings.Join(content.Names(), ", "))
	fmt.Println("\nSpeed: 1.0-50.0 (higher = faster)")
	fmt.Println("\nDensity: 0.1-3.0 (higher = more drops)")
	fmt.Println("\nBackground Color: R,G,B (e.g., 255,255,255 for white, 0,0,0 for black) or auto-detect")
	fmt.Println("\nFade: quadratic, linear")
	fmt.Println("\nKeys: q/Esc/Ctrl+C quit, space pause, +/- speed, [/] density")
}
