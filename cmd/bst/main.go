package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Inputs"
	"github.com/g-m-twostay/go-bst/Trees"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "keys",
		Usage: "comma separated integer keys to build the tree from; random keys are drawn when empty",
	},
	&cli.IntFlag{
		Name:    "size",
		Usage:   "number of random keys to draw",
		Value:   Inputs.DefaultSize,
		EnvVars: []string{"BST_SIZE"},
	},
	&cli.IntFlag{
		Name:    "min",
		Usage:   "smallest random key",
		Value:   Inputs.DefaultMin,
		EnvVars: []string{"BST_MIN"},
	},
	&cli.IntFlag{
		Name:    "max",
		Usage:   "largest random key",
		Value:   Inputs.DefaultMax,
		EnvVars: []string{"BST_MAX"},
	},
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "seed for random keys, 0 for a random seed",
		EnvVars: []string{"BST_SEED"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "bst",
		Usage:   "build, print and rebalance binary search trees",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdPrint,
	}
	return app.Run(args)
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "show traversals and balance before and after a skewing insert and a rebalance",
	Flags:  inputFlags,
	Action: runDemo,
}

var cmdPrint = &cli.Command{
	Name:  "print",
	Usage: "draw the tree built from the input keys",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "insert",
			Usage: "comma separated keys to insert after building",
		},
		&cli.StringFlag{
			Name:  "remove",
			Usage: "comma separated keys to remove after inserting",
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebalance before printing",
		},
	}, inputFlags...),
	Action: runPrint,
}

// parseKeys parses a comma separated list of ints. An empty string gives no keys.
func parseKeys(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing key %q: %w", p, err)
		}
		out = append(out, k)
	}
	return out, nil
}

func loadKeys(cctx *cli.Context) ([]int, error) {
	if cctx.IsSet("keys") {
		return parseKeys(cctx.String("keys"))
	}
	keys, err := Inputs.Random(gofakeit.New(cctx.Int64("seed")), cctx.Int("size"), cctx.Int("min"), cctx.Int("max"))
	if err != nil {
		return nil, err
	}
	slog.Debug("drew random keys", "count", len(keys), "keys", keys)
	return keys, nil
}

func printTraversals(w io.Writer, tree *Trees.BST[int]) {
	fmt.Fprintf(w, "Level order traversal: %v\n", tree.LevelOrder())
	fmt.Fprintf(w, "Pre-order traversal: %v\n", tree.PreOrder())
	fmt.Fprintf(w, "Post-order traversal: %v\n", tree.PostOrder())
	fmt.Fprintf(w, "In-order traversal: %v\n", tree.InOrder())
}

func runDemo(cctx *cli.Context) error {
	keys, err := loadKeys(cctx)
	if err != nil {
		return err
	}
	return demo(cctx.App.Writer, keys)
}

var demoInserts = []int{101, 1001, 200, 999}

func demo(w io.Writer, keys []int) error {
	tree := Trees.New(keys)
	slog.Info("built tree", "size", tree.Size(), "height", tree.Height())

	fmt.Fprintln(w, "Initially")
	fmt.Fprintf(w, "Is the tree balanced? %v\n", tree.Balanced())
	printTraversals(w, tree)
	fmt.Fprintln(w)

	for _, k := range demoInserts {
		if !tree.Insert(k) {
			slog.Debug("key already present", "key", k)
		}
	}
	fmt.Fprintln(w, "After adding new nodes")
	fmt.Fprintf(w, "Is the tree balanced now after adding new node: %v\n\n", tree.Balanced())

	tree.Rebalance()
	slog.Info("rebalanced tree", "size", tree.Size(), "height", tree.Height())
	fmt.Fprintln(w, "After rebalancing")
	fmt.Fprintf(w, "Is the tree balanced now after rebalancing? %v\n", tree.Balanced())
	printTraversals(w, tree)
	return nil
}

func runPrint(cctx *cli.Context) error {
	keys, err := loadKeys(cctx)
	if err != nil {
		return err
	}
	ins, err := parseKeys(cctx.String("insert"))
	if err != nil {
		return err
	}
	rem, err := parseKeys(cctx.String("remove"))
	if err != nil {
		return err
	}
	tree := Trees.New(keys)
	for _, k := range ins {
		tree.Insert(k)
	}
	for _, k := range rem {
		if !tree.Remove(k) {
			slog.Warn("key not in tree", "key", k)
		}
	}
	if cctx.Bool("rebalance") {
		tree.Rebalance()
	}
	w := cctx.App.Writer
	fmt.Fprint(w, tree.String())
	fmt.Fprintf(w, "size: %d, height: %d, balanced: %v\n", tree.Size(), tree.Height(), tree.Balanced())
	return nil
}
