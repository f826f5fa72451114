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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/zymatik-com/arv/genome"
)

// repl is a stand-in for the original Python implementation's
// code.interact() drop-in shell, which Go has no equivalent of: a small
// line-editing loop (via peterh/liner) understanding a handful of commands
// against the loaded genome(s).
//
//	get <rsid>        print the genotype, chromosome and position for rsid
//	len               print the number of SNPs
//	contains <rsid>   print whether rsid is present
//	exit              leave the shell
func repl(genomes []*genome.Genome) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("Type `help` for the list of commands, `exit` to quit.")

	for {
		input, err := line.Prompt("arv> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Println("commands: get <rsid>, len, contains <rsid>, exit")
		case "len":
			for i, g := range genomes {
				fmt.Printf("genome[%d] (%s): %d SNPs\n", i, g.Name(), g.Len())
			}
		case "get":
			if len(fields) != 2 {
				fmt.Println("usage: get <rsid>")
				continue
			}
			runOnAll(genomes, fields[1], func(g *genome.Genome, key string) {
				s, err := g.Get(key)
				if err != nil {
					fmt.Println(err)
					return
				}
				fmt.Printf("%s: chromosome=%s position=%d genotype=%s\n",
					key, s.Chromosome, s.Position, s.Genotype)
			})
		case "contains":
			if len(fields) != 2 {
				fmt.Println("usage: contains <rsid>")
				continue
			}
			runOnAll(genomes, fields[1], func(g *genome.Genome, key string) {
				fmt.Printf("%s: %s\n", key, strconv.FormatBool(g.Contains(key)))
			})
		default:
			fmt.Printf("unknown command %q; try `help`\n", fields[0])
		}
	}
}

func runOnAll(genomes []*genome.Genome, key string, fn func(*genome.Genome, string)) {
	for i, g := range genomes {
		if len(genomes) > 1 {
			fmt.Printf("genome[%d]: ", i)
		}
		fn(g, key)
	}
}
