/* SPDX-License-Identifier: AGPL-3.0-or-later
 *
 * Zymatik Arv - A fast 23andMe raw genome parser for Go.
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published
 * by the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Command arv loads one or more 23andMe raw genome files and prints a
// one-line summary for each, optionally an example phenotype report, and
// optionally drops into an interactive shell bound to the loaded genomes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/urfave/cli/v2"
	"github.com/zymatik-com/arv/genome"
	"github.com/zymatik-com/arv/match"
)

func main() {
	var logger *slog.Logger
	var showProgress bool

	init := func(c *cli.Context) error {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: (*slog.Level)(c.Generic("log-level").(*logLevelFlag)),
		}))
		showProgress = c.Bool("show-progress")
		return nil
	}

	app := &cli.App{
		Name:      "arv",
		Usage:     "A fast 23andMe raw genome parser",
		UsageText: "arv [--example] [--repl] FILE...",
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set the log level",
				Value:   fromLogLevel(slog.LevelWarn),
			},
			&cli.BoolFlag{
				Name:    "show-progress",
				Aliases: []string{"p"},
				Usage:   "Show progress bars while loading large files",
				Value:   true,
			},
			&cli.BoolFlag{
				Name:  "example",
				Usage: "Show an example phenotype report for the genome(s)",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "repl",
				Usage: "Open an interactive shell loaded with the given genomes",
				Value: false,
			},
		},
		Before: init,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("missing required genome file argument")
			}

			var genomes []*genome.Genome
			for _, path := range c.Args().Slice() {
				fmt.Printf("%s ... ", filepath.Base(path))

				g, err := loadWithProgress(path, showProgress)
				if err != nil {
					fmt.Println()
					logger.Error("failed to load genome", "path", path, "error", err)
					return err
				}

				fmt.Println(summary(g))
				genomes = append(genomes, g)
			}

			if c.Bool("example") {
				fmt.Println()
				for i, path := range c.Args().Slice() {
					fmt.Printf("%s ... %s\n", filepath.Base(path), example(genomes[i]))
				}
			}

			if c.Bool("repl") {
				return repl(genomes)
			}

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		if logger != nil {
			logger.Error("error running arv", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, "error running arv:", err)
		}
		os.Exit(1)
	}
}

// loadWithProgress loads path, showing a byte progress bar (as the sibling
// importer CLI does for its own long-running imports) when requested and
// the file is large enough to be worth showing one for.
func loadWithProgress(path string, showProgress bool) (*genome.Genome, error) {
	if !showProgress {
		return genome.Load(path)
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() < 1<<20 {
		return genome.Load(path)
	}

	bar := pb.Full.Start64(info.Size())
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }}`)
	defer bar.Finish()

	g, err := genome.Load(path)
	bar.SetCurrent(info.Size())
	return g, err
}

// summary returns a textual summary of the genome, matching the original
// arv command line's "<N> SNPs, male|female" format.
func summary(g *genome.Genome) string {
	gender := "female"
	if g.YChromosome() {
		gender = "male"
	}
	return fmt.Sprintf("%d SNPs, %s", g.Len(), gender)
}

// example returns a canned phenotype sentence derived from rs1426654
// (complexion) and rs12913832 (eye color), matching the original arv
// command line's --example report.
func example(g *genome.Genome) string {
	gender := "woman"
	if g.YChromosome() {
		gender = "man"
	}

	complexion := "dark"
	if s, err := g.Get("rs1426654"); err == nil && s.Genotype.String() == "AA" {
		complexion = "light"
	}

	color := "an unknown"
	if s, err := g.Get("rs12913832"); err == nil {
		if c, err := match.Unphased(s, match.NewMapping(map[string]string{
			"AA": "brown",
			"AG": "brown or green",
			"GG": "blue",
		})); err == nil {
			color = c
		}
	}

	return fmt.Sprintf("A %s with %s eyes and %s skin", gender, color, complexion)
}

type logLevelFlag slog.Level

func fromLogLevel(l slog.Level) *logLevelFlag {
	f := logLevelFlag(l)
	return &f
}

func (f *logLevelFlag) Set(value string) error {
	return (*slog.Level)(f).UnmarshalText([]byte(value))
}

func (f *logLevelFlag) String() string {
	return (*slog.Level)(f).String()
}
