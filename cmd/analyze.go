package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"phishsniper/internal/config"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/logger"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeCommand constructs the 'analyze' subcommand that scores one URL or a
// file of URLs and prints the verdicts to stdout.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyzes URLs for phishing risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rawURL, _ := cmd.Flags().GetString("url")
			file, _ := cmd.Flags().GetString("file")
			output, _ := cmd.Flags().GetString("output")
			verbose, _ := cmd.Flags().GetBool("verbose")
			asJSON, _ := cmd.Flags().GetBool("json")
			debug, _ := cmd.Flags().GetBool("debug")

			if debug {
				logger.SetLevel(zap.DebugLevel)
			}

			urls, err := collectURLs(rawURL, file)
			if err != nil {
				return err
			}

			eng, closeEngine := getEngine(ctx, cfg)
			defer closeEngine()

			var results []domain.AnalysisResult
			if len(urls) == 1 {
				results = []domain.AnalysisResult{eng.Analyze(ctx, urls[0], verbose)}
			} else {
				results = eng.AnalyzeBatch(ctx, urls, verbose)
			}

			if asJSON {
				_, err = cmd.OutOrStdout().Write(encodeResults(results))
				if err != nil {
					return errors.Wrap(err, "write results")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			} else {
				for _, res := range results {
					printResult(cmd.OutOrStdout(), res)
				}
			}

			if output != "" {
				if err := os.WriteFile(output, encodeResults(results), 0o600); err != nil {
					return errors.Wrap(err, "write output file")
				}
				logger.Info(ctx, "results written", zap.String("path", output), zap.Int("count", len(results)))
			}

			return nil
		},
	}

	cmd.Flags().StringP("url", "u", "", "URL to analyze")
	cmd.Flags().StringP("file", "f", "", "File with one URL per line")
	cmd.Flags().StringP("output", "o", "", "Write the JSON results to this file")
	cmd.Flags().BoolP("verbose", "v", false, "Include extracted features in the results")
	cmd.Flags().Bool("json", false, "Print JSON instead of a human-readable summary")
	cmd.Flags().Bool("debug", false, "Enable debug logging")

	return cmd
}

// collectURLs returns the URL given by flag followed by those read from path.
// Blank lines and lines starting with '#' are skipped.
func collectURLs(rawURL, path string) ([]string, error) {
	var urls []string
	if rawURL != "" {
		urls = append(urls, rawURL)
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open url file")
		}
		defer func() { _ = f.Close() }()

		fromFile, err := readURLs(f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		return nil, errors.New("either --url or --file must be provided")
	}

	return urls, nil
}

func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read url file")
	}

	return urls, nil
}

// encodeResults renders a single verdict as an object and several as {"results": [...]}.
func encodeResults(results []domain.AnalysisResult) []byte {
	var e jx.Encoder
	if len(results) == 1 {
		results[0].Encode(&e)

		return e.Bytes()
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("results", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, res := range results {
					res.Encode(e)
				}
			})
		})
	})

	return e.Bytes()
}

func levelColor(level domain.RiskLevel) *color.Color {
	switch level {
	case domain.RiskLevelHigh:
		return color.New(color.FgRed, color.Bold)
	case domain.RiskLevelMedium:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen)
	}
}

// printResult writes a human-readable summary of res to w.
func printResult(w io.Writer, res domain.AnalysisResult) {
	_, _ = fmt.Fprintf(w, "%s\n", res.URL)
	_, _ = fmt.Fprintf(w, "  Risk: %s (%.1f)\n", levelColor(res.RiskLevel).Sprint(res.RiskLevel), res.RiskScore)

	if len(res.RiskFactors) == 0 {
		_, _ = fmt.Fprintln(w, "  No risk factors")
	}
	for _, f := range res.RiskFactors {
		_, _ = fmt.Fprintf(w, "  - [%s] %s (+%.1f)\n", f.Category, f.Description, f.Weight)
	}

	if res.Features == nil {
		return
	}

	info := res.Features.DomainInfo
	if info.Available() {
		registrar := "unknown"
		if info.Registrar != nil {
			registrar = *info.Registrar
		}
		age := "unknown"
		if info.DomainAgeDays != nil {
			age = fmt.Sprintf("%d days", *info.DomainAgeDays)
		}
		_, _ = fmt.Fprintf(w, "  Registrar: %s, age: %s\n", registrar, age)
	} else {
		_, _ = fmt.Fprintln(w, "  Registration data unavailable")
	}
	for _, m := range res.Features.BrandMatches {
		_, _ = fmt.Fprintf(w, "  Brand match: %s (distance %d)\n", m.Brand, m.Distance)
	}
}
