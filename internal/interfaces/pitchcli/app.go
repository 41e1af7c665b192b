// Package pitchcli is the operator command line for the layout engine. It lays out team
// sheets read from YAML or JSON files and prints the formation registry.
package pitchcli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
	stdStream  = "-"
)

// NewApp builds the pitchctl command tree. Streams are injected so tests can drive it.
func NewApp(version string, stdin io.Reader, stdout io.Writer) *cli.App {
	var (
		inputPath  string
		outputPath string
		mode       string
		format     string
	)

	formatFlag := &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "output format, yaml or json",
		Value:       formatYAML,
		Destination: &format,
	}
	outputFlag := &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output file, - for stdout",
		Value:       stdStream,
		Destination: &outputPath,
	}

	return &cli.App{
		Name:      "pitchctl",
		Usage:     "Lay out football team sheets on a pitch",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:  "layout",
				Usage: "Place the players of a lineup file on the pitch",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "input",
						Aliases:     []string{"i"},
						Usage:       "lineup file (YAML or JSON), - for stdin",
						Destination: &inputPath,
						Required:    true,
					},
					&cli.StringFlag{
						Name:        "mode",
						Aliases:     []string{"m"},
						Usage:       "layout mode, formation or grid",
						Value:       string(formation.ModeFormation),
						Destination: &mode,
					},
					outputFlag,
					formatFlag,
				},
				Action: func(cCtx *cli.Context) error {
					parsedMode, err := formation.ParseMode(mode)
					if err != nil {
						return err
					}

					in, closeIn, err := openInput(inputPath, cCtx.App.Reader)
					if err != nil {
						return err
					}
					defer closeIn()

					lineups, err := readLineups(in)
					if err != nil {
						return err
					}

					docs := make([]layoutDoc, 0, len(lineups))
					for _, l := range lineups {
						docs = append(docs, toLayoutDoc(l, formation.LayoutWithMode(l, parsedMode)))
					}
					return writeOutput(outputPath, cCtx.App.Writer, format, docs)
				},
			},
			{
				Name:  "formations",
				Usage: "List the supported formations and their slots",
				Flags: []cli.Flag{outputFlag, formatFlag},
				Action: func(cCtx *cli.Context) error {
					return writeOutput(outputPath, cCtx.App.Writer, format, formationDocs())
				},
			},
		},
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == stdStream {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path string, stdout io.Writer, format string, v any) (err error) {
	w := stdout
	if path != "" && path != stdStream {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	return encode(w, format, v)
}

func encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := sonic.ConfigDefault.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
