package cmd

import (
	"log"
	"path/filepath"
)

// Input contains the input for the root command and its subcommands.
type Input struct {
	workdir    string
	verbose    bool
	trace      bool
	jsonLogger bool

	// run
	dialect        string
	configPath     string
	envFile        string
	sets           []string
	stepLimit      int
	returnRegister string

	// maze
	from       string
	to         string
	within     int
	tour       bool
	returnHome bool
	distances  bool
}

func (i *Input) resolve(path string) string {
	basedir, err := filepath.Abs(i.workdir)
	if err != nil {
		log.Fatal(err)
	}
	if path == "" {
		return path
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(basedir, path)
	}
	return path
}

// ConfigPath returns the path to the run config file, or "".
func (i *Input) ConfigPath() string {
	return i.resolve(i.configPath)
}

// EnvFile returns the path to the register env-file, or "".
func (i *Input) EnvFile() string {
	return i.resolve(i.envFile)
}
