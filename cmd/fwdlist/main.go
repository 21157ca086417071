package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spicery/fwdlist/pkg/common"
	"github.com/spicery/fwdlist/pkg/script"
	"github.com/spicery/fwdlist/pkg/store"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `fwdlist - run list scripts and inspect saved lists

Scripts are YAML documents declaring named lists and the operations to apply
to them. Resulting lists can be printed in several formats and saved to a
sqlite database for later inspection.`

const DEFAULT_FORMAT = "TEXT"

type outputFlags struct {
	format    *string
	output    *string
	trim      *int
	indent    *int
	positions *bool
}

func addOutputFlags(cmd *kingpin.CmdClause) outputFlags {
	return outputFlags{
		format:    cmd.Flag("format", "Output format (TEXT, JSON, YAML, ASCIITREE, DOT)").Short('f').Default(DEFAULT_FORMAT).String(),
		output:    cmd.Flag("output", "Output file (defaults to stdout)").Short('o').String(),
		trim:      cmd.Flag("trim", "Trim values for display purposes").Default("0").Int(),
		indent:    cmd.Flag("indent", "Indentation for JSON and YAML output").Default("0").Int(),
		positions: cmd.Flag("positions", "Show element positions where the format supports it").Bool(),
	}
}

func main() {
	app := kingpin.New("fwdlist", usage)
	app.Version(fmt.Sprintf("fwdlist version %s", Version))
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()

	run := app.Command("run", "Run a list script")
	runScript := run.Arg("script", "YAML script file").Required().ExistingFile()
	runDB := run.Flag("db", "Save the resulting lists to this sqlite database").String()
	runOut := addOutputFlags(run)

	demo := app.Command("demo", "Run the built-in demonstration script")
	demoOut := addOutputFlags(demo)

	show := app.Command("show", "Print lists saved in a database")
	showDB := show.Flag("db", "sqlite database").Required().String()
	showNames := show.Arg("names", "Lists to show (defaults to all)").Strings()
	showOut := addOutputFlags(show)

	del := app.Command("delete", "Delete lists saved in a database")
	delDB := del.Flag("db", "sqlite database").Required().String()
	delNames := del.Arg("names", "Lists to delete").Required().Strings()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch command {
	case run.FullCommand():
		var cfg *script.ScriptConfig
		cfg, err = script.LoadScriptConfig(*runScript)
		if err == nil {
			err = runScriptConfig(cfg, *runDB, runOut, log)
		}
	case demo.FullCommand():
		var cfg *script.ScriptConfig
		cfg, err = script.LoadScriptConfigFromString(script.DemoScript)
		if err == nil {
			err = runScriptConfig(cfg, "", demoOut, log)
		}
	case show.FullCommand():
		err = showLists(*showDB, *showNames, showOut, log)
	case del.FullCommand():
		err = deleteLists(*delDB, *delNames, log)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScriptConfig(cfg *script.ScriptConfig, dbPath string, out outputFlags, log logrus.FieldLogger) error {
	r, err := script.NewRunner(cfg, log)
	if err != nil {
		return err
	}
	if err := r.Run(); err != nil {
		return err
	}

	lists := r.Lists()
	if dbPath != "" {
		s, err := openStore(dbPath, log)
		if err != nil {
			return err
		}
		defer s.Close()
		for _, nl := range lists {
			if _, err := s.Save(nl.Name, nl.List); err != nil {
				return err
			}
		}
	}

	snapshots := make([]common.Snapshot, 0, len(lists))
	for _, nl := range lists {
		snapshots = append(snapshots, common.NewSnapshot(nl.Name, nl.List))
	}
	return printSnapshots(snapshots, out)
}

func showLists(dbPath string, names []string, out outputFlags, log logrus.FieldLogger) error {
	s, err := openStore(dbPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(names) == 0 {
		names, err = s.Names()
		if err != nil {
			return err
		}
	}
	snapshots := make([]common.Snapshot, 0, len(names))
	for _, name := range names {
		l, err := s.Load(name)
		if err != nil {
			return err
		}
		snapshots = append(snapshots, common.NewSnapshot(name, l))
	}
	return printSnapshots(snapshots, out)
}

func deleteLists(dbPath string, names []string, log logrus.FieldLogger) error {
	s, err := openStore(dbPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, name := range names {
		if err := s.Delete(name); err != nil {
			return err
		}
	}
	return nil
}

func openStore(dbPath string, log logrus.FieldLogger) (*store.Store, error) {
	s, err := store.Open(dbPath, log)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func printSnapshots(snapshots []common.Snapshot, out outputFlags) error {
	printFunc, err := common.PickPrintFunc(*out.format)
	if err != nil {
		return err
	}

	// Determine output destination.
	var output io.Writer = os.Stdout
	if *out.output != "" {
		file, err := os.Create(*out.output)
		if err != nil {
			return errors.Wrap(err, "error creating output file")
		}
		defer file.Close()
		output = file
	}

	return printFunc(snapshots, output, &common.PrintOptions{
		Format:            *out.format,
		Indent:            *out.indent,
		TrimValueOnOutput: *out.trim,
		ShowPositions:     *out.positions,
	})
}
