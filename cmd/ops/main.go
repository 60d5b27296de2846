package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"taskflow/internal/clock"
	"taskflow/internal/export"
	"taskflow/internal/ops"
	"taskflow/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:])
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "drill":
		err = cmdDrill(os.Args[2:])
	case "export":
		err = cmdExport(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := pflag.NewFlagSet("backup", pflag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "taskflow-"+ts+".tar.gz")
	}

	if err := ops.Backup(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func cmdRestore(args []string) error {
	fs := pflag.NewFlagSet("restore", pflag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.Restore(*archive, *target)
}

func cmdDrill(args []string) error {
	fs := pflag.NewFlagSet("drill", pflag.ContinueOnError)
	archive := fs.String("archive", "", "backup archive to verify (.tar.gz)")
	blob := fs.String("blob", "projects.json", "project blob name inside the archive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}

	n, err := ops.Drill(*archive, *blob)
	if err != nil {
		return err
	}
	fmt.Printf("archive ok: %d projects\n", n)
	return nil
}

func cmdExport(args []string) error {
	fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
	dataFile := fs.String("data-file", "data/projects.json", "path to the project blob")
	out := fs.String("out", "", "output markdown path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	repo := storage.NewFileRepo(*dataFile)
	projects, ok, err := repo.Load()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no data file at %s", *dataFile)
	}

	doc := export.Markdown(projects, clock.RealClock{}.Now())
	if *out == "" {
		fmt.Print(doc)
		return nil
	}
	return os.WriteFile(*out, []byte(doc), 0o644)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: ops <command> [flags]

commands:
  backup   archive the data directory into a .tar.gz
  restore  unpack a backup archive
  drill    verify a backup archive restores and parses
  export   render the project blob as markdown`)
}
