package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/moink/AoC2016/vm"
	"github.com/moink/AoC2016/vm/assembunny"
	"github.com/moink/AoC2016/vm/turinglock"
)

// RunConfig is the YAML run file accepted by --config. Command-line flags
// override its values.
type RunConfig struct {
	Dialect        string         `yaml:"dialect"`
	Registers      map[string]int `yaml:"registers"`
	ReturnRegister string         `yaml:"return_register"`
	StepLimit      int            `yaml:"step_limit"`
}

type dialect struct {
	instructions   func() vm.InstructionSet
	returnRegister string
}

var dialects = map[string]dialect{
	"assembunny": {assembunny.InstructionSet, assembunny.ReturnRegister},
	"turinglock": {turinglock.InstructionSet, turinglock.ReturnRegister},
}

func loadRunConfig(path string) (*RunConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := &RunConfig{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return cfg, nil
}

// readEnvRegisters reads KEY=value register assignments from a dotenv file.
func readEnvRegisters(path string) (map[string]int, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	regs := make(map[string]int, len(env))
	for name, raw := range env {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "%s: register %s", path, name)
		}
		regs[name] = v
	}
	return regs, nil
}

// parseAssignments turns "a=7" flag values into register assignments.
func parseAssignments(pairs []string) (map[string]int, error) {
	regs := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("invalid register assignment %q, want NAME=VALUE", pair)
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "register assignment %q", pair)
		}
		regs[name] = v
	}
	return regs, nil
}

// runConfig merges, lowest precedence first: dialect defaults, the YAML
// config, the env-file and the command-line flags.
func (i *Input) runConfig(changed func(name string) bool) (*RunConfig, error) {
	cfg := &RunConfig{Dialect: "assembunny"}
	if i.configPath != "" {
		loaded, err := loadRunConfig(i.ConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.Dialect == "" {
			cfg.Dialect = "assembunny"
		}
	}
	if cfg.Registers == nil {
		cfg.Registers = map[string]int{}
	}
	if changed("dialect") {
		cfg.Dialect = i.dialect
	}
	if changed("step-limit") {
		cfg.StepLimit = i.stepLimit
	}
	if changed("return-register") {
		cfg.ReturnRegister = i.returnRegister
	}

	d, ok := dialects[cfg.Dialect]
	if !ok {
		return nil, errors.Errorf("unknown dialect %q", cfg.Dialect)
	}
	if cfg.ReturnRegister == "" {
		cfg.ReturnRegister = d.returnRegister
	}

	if i.envFile != "" {
		regs, err := readEnvRegisters(i.EnvFile())
		if err != nil {
			return nil, err
		}
		for name, v := range regs {
			cfg.Registers[name] = v
		}
	}
	regs, err := parseAssignments(i.sets)
	if err != nil {
		return nil, err
	}
	for name, v := range regs {
		cfg.Registers[name] = v
	}
	return cfg, nil
}
