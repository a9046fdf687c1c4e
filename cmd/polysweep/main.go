package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gfxpoly/sweep/poly"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "polysweep",
		Usage: "Run the planar polygon sweep engine from the command line",
		Commands: []*cli.Command{
			processCommand(),
			checkCommand(),
			dumpCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "polysweep:", err)
		os.Exit(1)
	}
}

func ruleByName(name string) (poly.WindRule, error) {
	switch name {
	case "evenodd":
		return poly.EvenOddRule, nil
	case "nonzero":
		return poly.NonZeroRule, nil
	case "union":
		return poly.UnionRule, nil
	case "intersect":
		return poly.IntersectRule, nil
	case "difference":
		return poly.DifferenceRule, nil
	default:
		return nil, fmt.Errorf("unknown rule %q", name)
	}
}

func processCommand() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Run a winding rule over a polygon document read from stdin",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rule", Value: "evenodd", Usage: "evenodd, nonzero, union, intersect, or difference"},
			&cli.BoolFlag{Name: "paranoid", Usage: "enable heavier internal assertions"},
			&cli.BoolFlag{Name: "ps", Usage: "write debug PostScript instead of JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := readDocument(os.Stdin)
			if err != nil {
				return err
			}
			polygons, err := doc.toPolygons()
			if err != nil {
				return err
			}
			rule, err := ruleByName(cmd.String("rule"))
			if err != nil {
				return err
			}
			opts := poly.Options{Paranoid: cmd.Bool("paranoid")}
			result, err := poly.Process(polygons, rule, poly.PolygonCountContext(len(polygons)), poly.NewWriter(), opts)
			if err != nil {
				return err
			}
			if cmd.Bool("ps") {
				return poly.SaveDebugPostScript(os.Stdout, result)
			}
			return writeDocument(os.Stdout, fromPolygon(result))
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate that a polygon document read from stdin is a closed subdivision",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := readDocument(os.Stdin)
			if err != nil {
				return err
			}
			polygons, err := doc.toPolygons()
			if err != nil {
				return err
			}
			for _, p := range polygons {
				ok, err := poly.Check(p)
				if !ok {
					return fmt.Errorf("not closed: %w", err)
				}
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Write a polygon document read from stdin as debug PostScript",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := readDocument(os.Stdin)
			if err != nil {
				return err
			}
			polygons, err := doc.toPolygons()
			if err != nil {
				return err
			}
			for _, p := range polygons {
				if err := poly.SaveDebugPostScript(os.Stdout, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
