// Command chesscore is the CLI driver for the engine core: fixed-depth
// and timed search, perft/divide, the EPD testsuite runner, and version
// info. It has no interactive front-end of its own (spec.md §1 leaves
// that out of scope) - every flag runs one operation and exits.
//
// Grounded on the teacher's cmd/FrankyGo/main.go flag set, trimmed of
// the UCI stdin loop, opening-book flags, and pondering flags (all
// non-goals per spec.md §1).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kpeterson/chesscore/internal/config"
	"github.com/kpeterson/chesscore/internal/perft"
	"github.com/kpeterson/chesscore/internal/position"
	"github.com/kpeterson/chesscore/internal/search"
	"github.com/kpeterson/chesscore/internal/testsuite"
)

// version is the engine's release tag. Bumped by hand; this repo has no
// CI-injected build-info step.
const version = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to a TOML configuration file (optional)")
	logLevel := flag.String("loglevel", "", "overrides config.Settings.Log.Level\n(CRITICAL|ERROR|WARNING|NOTICE|INFO|DEBUG)")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search, perft, or divide")
	depth := flag.Int("depth", 0, "run a fixed-depth search to this depth and print the result")
	moveTime := flag.Int("movetime", 0, "run a timed search for this many milliseconds (-depth sets the max depth; without it the limit is search.MaxPly)")
	perftDepth := flag.Int("perft", 0, "run perft divide to this depth from -fen and print per-move leaf counts")
	testSuitePath := flag.String("testsuite", "", "directory of .epd files to run as a regression suite")
	testMoveTimeMs := flag.Int("testtime", 2000, "search time per test-suite position, in milliseconds")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof in the working directory) while running")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if err := config.Load(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		config.Settings.Log.Level = *logLevel
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch {
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth)
	case *testSuitePath != "":
		runTestsuite(*testSuitePath, *testMoveTimeMs)
	case *moveTime > 0:
		runTimedSearch(*fen, *depth, *moveTime)
	case *depth > 0:
		runFixedDepthSearch(*fen, *depth)
	default:
		flag.Usage()
	}
}

func runPerft(fen string, depth int) {
	pos := position.NewPosition(fen)
	perft.Print(pos, depth)
}

func runFixedDepthSearch(fen string, depth int) {
	pos := position.NewPosition(fen)
	engine := search.NewEngine()
	result := engine.FindBestMove(pos, depth)
	printResult(result)
}

func runTimedSearch(fen string, maxDepth, moveTimeMs int) {
	if maxDepth <= 0 {
		maxDepth = search.MaxPly
	}
	pos := position.NewPosition(fen)
	engine := search.NewEngine()
	result := engine.FindBestMoveTimed(pos, maxDepth, moveTimeMs)
	printResult(result)
}

func printResult(r search.Result) {
	out.Printf("bestmove %s\n", r.Best)
	out.Printf("score %d depth %d nodes %d timedOut %t elapsed %s\n",
		r.Score, r.DepthDone, r.Nodes, r.TimedOut, r.Elapsed)
	nps := uint64(0)
	if r.Elapsed > 0 {
		nps = r.Nodes * 1e9 / uint64(r.Elapsed.Nanoseconds())
	}
	out.Printf("nps %d\n", nps)
}

func runTestsuite(dir string, moveTimeMs int) {
	report, err := testsuite.Run(dir, moveTimeMs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, r := range report.Results {
		status := "FAIL"
		if r.Passed {
			status = "PASS"
		}
		out.Printf("%-6s %-20s want=%v got=%s (%s)\n", status, r.Case.ID, r.Case.BestMove, r.Played, r.Elapsed)
	}
	out.Printf("\n%d passed, %d failed\n", report.Passed, report.Failed)
}

func printVersionInfo() {
	out.Printf("chesscore %s\n", version)
	out.Println("Environment:")
	out.Printf("  Go version: %s\n", runtime.Version())
	out.Printf("  Arch: %s, compiler: %s\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  CPUs: %d\n", runtime.NumCPU())
}
