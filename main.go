package main

import (
	"errors"
	"os"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-utils/env"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-steplib/bitrise-step-export-hxo-dex/step"
)

// argInputs are the step inputs the positional arguments map onto, in order.
var argInputs = []string{"hxo_build_dir", "assets_dir"}

var inputDefaults = map[string]string{
	"verbose_log": "false",
}

// argsRepository serves step inputs from positional arguments first,
// then from the wrapped environment, then from the input defaults.
type argsRepository struct {
	env.Repository
	args map[string]string
}

func newArgsRepository(args []string, repository env.Repository) argsRepository {
	values := map[string]string{}
	for i, arg := range args {
		if i >= len(argInputs) {
			break
		}
		values[argInputs[i]] = arg
	}
	return argsRepository{Repository: repository, args: values}
}

// Get ...
func (r argsRepository) Get(key string) string {
	if value, ok := r.args[key]; ok {
		return value
	}
	if value := r.Repository.Get(key); value != "" {
		return value
	}
	return inputDefaults[key]
}

func errorf(f string, args ...interface{}) int {
	log.Errorf(f, args...)
	return 1
}

func run(args []string, repository env.Repository) int {
	inputParser := stepconf.NewInputParser(newArgsRepository(args, repository))
	logger := log.NewLogger()

	dexExport := step.NewDexExport(inputParser, logger, step.NewGlobFinder())

	config, err := dexExport.ProcessConfig()
	if err != nil {
		return errorf("Process config: %s", err)
	}

	log.SetEnableDebugLog(config.VerboseLog)

	result, err := dexExport.Run(config)
	if errors.Is(err, step.ErrDexNotFound) {
		return errorf("No %s found", step.DexName)
	} else if err != nil {
		return errorf("Run: %s", err)
	}

	outPath, err := dexExport.Export(result, config.AssetsDir)
	if err != nil {
		return errorf("Export: %s", err)
	}

	if err := dexExport.ExportOutputs(config, outPath); err != nil {
		return errorf("Export outputs: %s", err)
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], env.NewRepository()))
}
