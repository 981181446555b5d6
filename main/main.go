package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/regrid/io"
	"github.com/phil-mansfield/regrid/math/interpolate"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		interp, exampleConfig string
	)
	vars := map[string]*string{
		"Interpolate":   &interp,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interp, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is "+
			"'Interpolate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Interpolate":
		con, err := io.ReadInterpolateConfig(interp)
		if err != nil { log.Fatal(err.Error()) }
		interpolateMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Interpolate'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but regrid "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func interpolateMain(con *io.InterpolateConfig) {
	fg := interpolateSetupIO(con)
	defer fg.Close()

	axes, vals, err := io.ReadGrid(
		con.Input, con.CoordinateColumn, con.ValueColumn,
	)
	if err != nil { log.Fatal(err.Error()) }

	g, err := interpolate.NewRegularGrid(axes, vals, con.Policy())
	if err != nil { log.Fatal(err.Error()) }
	logGrid(g)

	xi, err := io.ReadQueries(con.Queries, con.QueryColumn)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d query points from '%s'.", xi.Shape[0], con.Queries)

	res, err := g.EvalParallel(xi, con.Workers)
	if err != nil { log.Fatal(err.Error()) }

	err = io.WriteResultsFile(con.Output, xi, res)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Wrote results to '%s'.", con.Output)

	if con.ValidPlotFile() {
		err = io.PlotResults(con.PlotFile, con.PlotDimension, xi, res)
		if err != nil { log.Fatal(err.Error()) }
		plt.Execute()
		log.Printf("Wrote plot to '%s'.", con.PlotFile)
	}
}

func interpolateSetupIO(con *io.InterpolateConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	log.Println("Running Interpolate main.")

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

func logGrid(g *interpolate.RegularGrid) {
	for d := 0; d < g.Dims(); d++ {
		axis := g.Axis(d)
		log.Printf(
			"Axis %d: %d points in [%g, %g].",
			d, len(axis), floats.Min(axis), floats.Max(axis),
		)
	}
	log.Printf(
		"Bounds policy: %s, value shape: %v.", g.Policy(), g.ValueShape(),
	)
}
