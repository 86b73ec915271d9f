package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"shrine-engine/config"
	"shrine-engine/engine"
	mg "shrine-engine/shrinemg"
)

const maxUCIDepth = config.MaxEngineDepth

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := cfg.Logs.Logger(os.Stderr)
	if err := uciLoop(os.Stdin, os.Stdout, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("reading commands")
		os.Exit(1)
	}
}

// uciLoop reads commands from in until quit or end of input and writes the
// protocol responses to out.
func uciLoop(in io.Reader, out io.Writer, cfg *config.Config, logger zerolog.Logger) error {
	scanner := bufio.NewScanner(in)
	position := mg.NewPosition()
	searcher := engine.NewSearcher(logger)
	defaultDepth := max(1, min(cfg.Engine.Depth, maxUCIDepth))
	depth := defaultDepth
	printStats := false

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		logger.Debug().Str("command", line).Msg("uci")
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name", cfg.Engine.Name)
			fmt.Fprintln(out, "id author", cfg.Engine.Author)
			fmt.Fprintf(out, "option name Depth type spin default %d min 1 max %d\n", defaultDepth, maxUCIDepth)
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			position = mg.NewPosition()
		case "quit":
			return nil
		case "stop":
			// Searches run to completion before the next command is read.
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				logger.Warn().Err(err).Str("command", line).Msg("bad position")
			}
			position = next
		case "go":
			goDepth, err := parseGo(tokens[1:], depth)
			if err != nil {
				fmt.Fprintln(out, "info string", err)
			}
			runSearch(out, searcher, position, goDepth, logger)
			if printStats {
				searcher.DumpStats(out)
			}
		case "setoption":
			newDepth, err := parseSetOption(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			depth = newDepth
		case "stats":
			printStats = !printStats
			fmt.Fprintln(out, "info string search statistics", onOff(printStats))
		case "d":
			fmt.Fprint(out, position.Board.String())
			fmt.Fprintln(out, "Fen:", position.FEN())
			if position.Board.InCheck(position.Side) {
				fmt.Fprintln(out, "Checkers: yes")
			}
		case "eval":
			fmt.Fprintln(out, "info string eval", engine.Evaluate(&position.Board))
		case "perft":
			n, err := depthArg(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			for _, l := range mg.DivideLines(mg.PerftDivide(position.Board, position.Side, n)) {
				fmt.Fprintln(out, l)
			}
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
	return scanner.Err()
}

// parsePosition builds the position described by the arguments of a position
// command. It always starts over from the given setup and replays every move.
// On error the position reached so far is returned with it.
func parsePosition(args []string) (mg.Position, error) {
	if len(args) == 0 {
		return mg.NewPosition(), errors.New("malformed position command")
	}
	var position mg.Position
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		position = mg.NewPosition()
	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if strings.ToLower(tok) == "moves" {
				end = i
				break
			}
		}
		if end == 0 {
			return mg.NewPosition(), errors.New("invalid fen position")
		}
		var err error
		position, err = mg.ParseFEN(strings.Join(rest[:end], " "))
		if err != nil {
			return mg.NewPosition(), err
		}
		rest = rest[end:]
	default:
		return mg.NewPosition(), fmt.Errorf("invalid position subcommand %q", args[0])
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return position, nil
	}
	for _, text := range rest[1:] {
		if err := position.PlayUCI(strings.ToLower(text)); err != nil {
			return position, fmt.Errorf("move %s not applied for position %s: %w", text, position.FEN(), err)
		}
	}
	return position, nil
}

// parseGo returns the depth requested by a go command. Clock and mode tokens
// are accepted and ignored since every search runs to a fixed depth.
func parseGo(args []string, depth int) (int, error) {
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			n, err := depthArg(args[i+1:])
			if err != nil {
				return depth, err
			}
			depth = n
			i++
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		case "infinite", "ponder":
		default:
			return depth, fmt.Errorf("unknown go subcommand %s", args[i])
		}
	}
	return depth, nil
}

// parseSetOption accepts "name Depth value N", the only option the engine has.
func parseSetOption(args []string) (int, error) {
	if len(args) != 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		return 0, errors.New("malformed setoption command")
	}
	if !strings.EqualFold(args[1], "depth") {
		return 0, fmt.Errorf("unknown option %s", args[1])
	}
	return depthArg(args[3:])
}

func depthArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing depth")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("could not convert depth %q", args[0])
	}
	if n < 1 || n > maxUCIDepth {
		return 0, fmt.Errorf("depth %d out of range 1-%d", n, maxUCIDepth)
	}
	return n, nil
}

func runSearch(out io.Writer, searcher *engine.Searcher, position mg.Position, depth int, logger zerolog.Logger) {
	res, err := searcher.Search(context.Background(), position.Board, position.Side, depth)
	switch {
	case errors.Is(err, engine.ErrNoLegalMoves):
		fmt.Fprintf(out, "info depth %d score %s nodes %d time %d\n",
			res.Depth, engine.ScoreString(res.Score, position.Side, res.Depth), res.Nodes, res.Elapsed.Milliseconds())
		fmt.Fprintln(out, "bestmove (none)")
		return
	case err != nil:
		logger.Error().Err(err).Int("depth", depth).Msg("search failed")
		fmt.Fprintln(out, "info string search failed:", err)
		fmt.Fprintln(out, "bestmove (none)")
		return
	}
	fmt.Fprintf(out, "info depth %d score %s nodes %d time %d pv %s\n",
		res.Depth, engine.ScoreString(res.Score, position.Side, res.Depth), res.Nodes, res.Elapsed.Milliseconds(), res.Move)
	fmt.Fprintln(out, "bestmove", res.Move)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
