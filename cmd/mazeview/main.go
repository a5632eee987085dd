// Command mazeview draws generated mazes in the terminal.
//
// Keys: r regenerates with a fresh seed, a cycles the algorithm, q or Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
)

type viewer struct {
	screen    tcell.Screen
	width     int
	height    int
	seed      uint64
	algorithm int
	gens      []maze.Generator
	maze      *maze.Maze
}

type options struct {
	width  int
	height int
	seed   uint64
	alg    string
}

// parseFlags reads the command line. -h is left to the flag package, so the
// height flag is -rows.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mazeview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.width, "w", 20, "maze width in cells")
	fs.IntVar(&opts.height, "rows", 10, "maze height in cells")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&opts.alg, "alg", "wilson", "generator: backtracker, kruskal or wilson")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	appLogger, err := logger.New("MAZEVIEW", config.ColorMagenta, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	v, err := newViewer(opts.width, opts.height, opts.seed, opts.alg)
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating screen: %v", err))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		appLogger.Error(fmt.Sprintf("Initializing screen: %v", err))
		os.Exit(1)
	}
	v.screen = screen
	defer screen.Fini()

	v.run()
}

func newViewer(width, height int, seed uint64, alg string) (*viewer, error) {
	m, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := maze.Lookup(alg); err != nil {
		return nil, err
	}

	v := &viewer{width: width, height: height, seed: seed, maze: m}
	for idx, name := range maze.Algorithms() {
		gen, err := maze.Lookup(name)
		if err != nil {
			return nil, err
		}
		if name == alg {
			v.algorithm = idx
		}
		v.gens = append(v.gens, gen)
	}
	if v.seed == 0 {
		v.seed = uint64(time.Now().UnixNano())
	}
	v.generate()
	return v, nil
}

func (v *viewer) generate() {
	v.maze.Generate(v.gens[v.algorithm], maze.NewRand(v.seed))
}

func (v *viewer) nextAlgorithm() {
	v.algorithm = (v.algorithm + 1) % len(v.gens)
	v.generate()
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				v.seed++
				v.generate()
				v.draw()
			case ev.Rune() == 'a':
				v.nextAlgorithm()
				v.draw()
			}
		}
	}
}

func (v *viewer) draw() {
	wall := tcell.StyleDefault.Background(tcell.ColorWhite)
	floor := tcell.StyleDefault
	start := tcell.StyleDefault.Background(tcell.ColorGreen)

	v.screen.Clear()
	tiles := maze.Tiles(v.maze)
	sx, sy := tiles.Start()
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			style := floor
			switch {
			case tiles.IsWall(x, y):
				style = wall
			case x == sx && y == sy:
				style = start
			}
			// Two columns per tile keeps the aspect ratio square.
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("%s %dx%d seed %d  [r]egenerate [a]lgorithm [q]uit",
		v.gens[v.algorithm].Name(), v.width, v.height, v.seed)
	for i, r := range status {
		v.screen.SetContent(i, tiles.Height()+1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}
