// Command contourinfo reports on SVG path data: the contours it consists of,
// their winding direction and bounds. It can reverse the path and replace
// conics, which arcs are turned into, with quadratic Béziers.
//
// Usage:
//
//	contourinfo [flags] [file]
//
// The path data is taken from -d, from file, or from standard input, in that
// order. Defaults for all flags but -d and -config can be set in a TOML file:
//
//	tolerance = 0.01
//	convert = true
//	format = "yaml"
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/contour"
)

var (
	errNoInput  = errors.New("no path data")
	errFormat   = errors.New("unknown output format")
	errTooMany  = errors.New("too many arguments")
	errNoConfig = errors.New("can't read config")
)

type config struct {
	Tolerance float64 `toml:"tolerance"`
	Convert   bool    `toml:"convert"`
	Reverse   bool    `toml:"reverse"`
	Format    string  `toml:"format"`
	Precision int     `toml:"precision"`
	Verbose   bool    `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Tolerance: 0.25,
		Format:    "text",
	}
}

type report struct {
	Contours  []contourReport `json:"contours" yaml:"contours"`
	Bounds    bounds          `json:"bounds" yaml:"bounds"`
	Converted bool            `json:"converted" yaml:"converted"`
	Path      string          `json:"path" yaml:"path"`
}

type contourReport struct {
	Commands  int    `json:"commands" yaml:"commands"`
	Closed    bool   `json:"closed" yaml:"closed"`
	Direction string `json:"direction" yaml:"direction"`
	Bounds    bounds `json:"bounds" yaml:"bounds"`
	Size      string `json:"size" yaml:"size"`
}

type bounds struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

func boundsOf(r contour.Rect) bounds {
	return bounds{r.X0, r.Y0, r.X1, r.Y1}
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "contourinfo: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("contourinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := defaultConfig()
	dataArg := fs.String("d", "", "SVG path data.")
	configArg := fs.String("config", "", "TOML file with default settings.")
	tolArg := fs.Float64("tolerance", def.Tolerance, "Maximum error when converting conics to quadratics. Zero or less uses a single subdivision.")
	convertArg := fs.Bool("convert", def.Convert, "Convert conics to quadratic Béziers.")
	reverseArg := fs.Bool("reverse", def.Reverse, "Reverse the direction of every contour.")
	formatArg := fs.String("format", def.Format, "Output format: text, yaml or json.")
	precArg := fs.Int("precision", def.Precision, "Maximum number of decimals in the path output. Zero means as many as needed.")
	verboseArg := fs.Bool("v", def.Verbose, "Log debug information to stderr.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := def
	if *configArg != "" {
		b, err := os.ReadFile(*configArg)
		if err != nil {
			return fmt.Errorf("%w: %w", errNoConfig, err)
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return fmt.Errorf("%w %s: %w", errNoConfig, *configArg, err)
		}
	}
	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tolerance":
			cfg.Tolerance = *tolArg
		case "convert":
			cfg.Convert = *convertArg
		case "reverse":
			cfg.Reverse = *reverseArg
		case "format":
			cfg.Format = *formatArg
		case "precision":
			cfg.Precision = *precArg
		case "v":
			cfg.Verbose = *verboseArg
		}
	})

	if cfg.Verbose {
		contour.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer contour.SetLogger(nil)
	}

	data, err := input(*dataArg, fs.Args(), stdin)
	if err != nil {
		return err
	}
	s, err := contour.ParseSVG(data)
	if err != nil {
		return err
	}

	r := analyze(s, cfg)
	return write(stdout, r, cfg.Format)
}

func input(d string, args []string, stdin io.Reader) (string, error) {
	var b []byte
	var err error
	switch {
	case len(args) > 1:
		return "", errTooMany
	case d != "":
		return d, nil
	case len(args) == 1:
		b, err = os.ReadFile(args[0])
	default:
		b, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", errNoInput
	}
	return string(b), nil
}

func analyze(s *contour.Shape, cfg config) report {
	var r report
	if cfg.Convert {
		if cfg.Tolerance > 0 {
			r.Converted = s.ConvertConicsToQuadraticsTolerance(cfg.Tolerance)
		} else {
			r.Converted = s.ConvertConicsToQuadratics()
		}
	}
	if cfg.Reverse {
		s.Reverse()
	}
	for _, c := range s.Contours() {
		r.Contours = append(r.Contours, contourReport{
			Commands:  c.Len(),
			Closed:    c.IsClosed(),
			Direction: c.Direction().String(),
			Bounds:    boundsOf(c.Bounds()),
			Size:      c.Bounds().Size().String(),
		})
	}
	r.Bounds = boundsOf(s.Bounds())
	r.Path = s.SVG(contour.SVGOptions{
		MaxPrecision:   cfg.Precision,
		ConicTolerance: cfg.Tolerance,
	})
	return r
}

func write(w io.Writer, r report, format string) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tcommands\tclosed\tdirection\tbounds\tsize")
		for i, c := range r.Contours {
			fmt.Fprintf(tw, "%d\t%d\t%t\t%s\t%s\t%s\n", i, c.Commands, c.Closed, c.Direction, c.Bounds, c.Size)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "bounds: %s\nconverted: %t\npath: %s\n", r.Bounds, r.Converted, r.Path)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("%w %q", errFormat, format)
	}
}

func (b bounds) String() string {
	return fmt.Sprintf("[%g,%g]..[%g,%g]", b.X0, b.Y0, b.X1, b.Y1)
}
