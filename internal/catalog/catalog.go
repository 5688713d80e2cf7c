package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/reactionnet/internal/network"
)

// particleColumns is the minimum column count of a valid particle-data
// or decays-file header line: PID Name Mass Width SpinDegen B S c b I Iz Q NumDecays.
const particleColumns = 13

// Load opens particleDatasheet and decaysDatasheet and builds a populated
// Network. Both files are read to completion and closed before Load
// returns. A missing or unreadable file is reported as a plain *os.PathError-
// wrapped error; a malformed line is reported as a *network.ParseError
// naming the offending file, line number, and text. Either failure leaves
// no usable network.
func Load(particleDatasheet, decaysDatasheet string) (*network.Network, error) {
	net := network.New()

	if err := loadParticles(net, particleDatasheet); err != nil {
		return nil, err
	}
	if err := loadDecays(net, decaysDatasheet); err != nil {
		return nil, err
	}

	return net, nil
}

func loadParticles(net *network.Network, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("catalog: open particle datasheet: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank trailing line must not cause parse failure
		}
		if len(fields) < particleColumns {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: fmt.Errorf("expected at least %d columns, got %d", particleColumns, len(fields))}
		}

		pid, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: fmt.Errorf("PID: %w", err)}
		}
		mass, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: fmt.Errorf("mass: %w", err)}
		}
		width, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: fmt.Errorf("width: %w", err)}
		}
		spinDegen, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: fmt.Errorf("spin-degeneracy: %w", err)}
		}

		spinStat := network.FD
		if int(spinDegen)%2 != 0 {
			spinStat = network.BE
		}

		p := network.NewParticle(pid, mass, spinDegen, width, spinStat)
		if err := net.AddParticle(p); err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: line, Wrapped: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("catalog: read particle datasheet: %w", err)
	}
	return nil
}

func loadDecays(net *network.Network, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("catalog: open decays datasheet: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		header := strings.Fields(scanner.Text())
		if len(header) == 0 {
			continue
		}
		if len(header) < particleColumns {
			return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("expected at least %d columns, got %d", particleColumns, len(header))}
		}

		parentPID, err := strconv.ParseInt(header[0], 10, 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("parent PID: %w", err)}
		}
		width, err := strconv.ParseFloat(header[3], 64)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("width: %w", err)}
		}
		numDecays, err := strconv.Atoi(header[len(header)-1])
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("num-decays: %w", err)}
		}

		parent, err := net.Particle(parentPID)
		if err != nil {
			return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("parent PID %d: %w", parentPID, err)}
		}

		for i := 0; i < numDecays; i++ {
			if !scanner.Scan() {
				return &network.ParseError{File: path, Line: lineNo, Text: "", Wrapped: fmt.Errorf("expected %d decay channel lines for PID %d, found %d", numDecays, parentPID, i)}
			}
			lineNo++
			channel := strings.Fields(scanner.Text())
			if len(channel) < 3 {
				return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("decay channel line too short")}
			}

			numDaughters, err := strconv.Atoi(channel[1])
			if err != nil {
				return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("num-daughters: %w", err)}
			}
			branchingRatio, err := strconv.ParseFloat(channel[2], 64)
			if err != nil {
				return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("branching ratio: %w", err)}
			}
			if len(channel) < 3+numDaughters {
				return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("expected %d daughter PIDs, found %d", numDaughters, len(channel)-3)}
			}

			daughters := make([]*network.Particle, 0, numDaughters)
			for d := 0; d < numDaughters; d++ {
				daughterPID, err := strconv.ParseInt(channel[3+d], 10, 64)
				if err != nil {
					return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("daughter PID: %w", err)}
				}
				daughter, err := net.Particle(daughterPID)
				if err != nil {
					return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: fmt.Errorf("daughter PID %d: %w", daughterPID, err)}
				}
				daughters = append(daughters, daughter)
			}

			reaction, err := network.NewDecay(parent, branchingRatio*width, daughters)
			if err != nil {
				return &network.ParseError{File: path, Line: lineNo, Text: scanner.Text(), Wrapped: err}
			}
			parent.AddReaction(reaction)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("catalog: read decays datasheet: %w", err)
	}
	return nil
}
