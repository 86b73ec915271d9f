package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"shrine-engine/engine"
	mg "shrine-engine/shrinemg"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	statsFlag := flag.Bool("stats", false, "print node statistics after each search")
	timeout := flag.Duration("timeout", 0, "abort each search after this long (0 = no limit)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := mg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := mg.ParseFEN(fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", fen).Msg("bad position")
	}

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	searcher := engine.NewSearcher(log)
	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		ctx := context.Background()
		cancel := func() {}
		if *timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, *timeout)
		}
		res, err := searcher.Search(ctx, pos.Board, pos.Side, depth)
		cancel()
		if err != nil && !errors.Is(err, engine.ErrNoLegalMoves) {
			log.Error().Err(err).Int("iteration", i+1).Msg("search failed")
			continue
		}
		totalNodes += res.Nodes
		fmt.Printf("iteration %d: bestmove %v  score %s  nodes=%d  time=%v\n",
			i+1, res.Move, engine.ScoreString(res.Score, pos.Side, depth), res.Nodes, res.Elapsed)
		if *statsFlag {
			searcher.DumpStats(os.Stdout)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n", totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
