package step

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-steputils/tools"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-io/go-utils/pathutil"
	"github.com/bitrise-io/go-utils/sliceutil"
)

// Input ...
type Input struct {
	BuildDir     string `env:"hxo_build_dir,required"`
	AssetsDir    string `env:"assets_dir,required"`
	OutputEnvKey string `env:"output_env_key"`
	VerboseLog   bool   `env:"verbose_log"`
}

// Config ...
type Config struct {
	BuildDir     string
	AssetsDir    string
	OutputEnvKey string
	VerboseLog   bool
}

// Result ...
type Result struct {
	dexFiles   []string
	candidates []string
	selected   Artifact
}

// DexFinder ...
type DexFinder interface {
	Find(root, pattern string) ([]string, error)
}

// DexExport ...
type DexExport struct {
	inputParser stepconf.InputParser
	logger      log.Logger
	finder      DexFinder
}

const (
	// DexName is the file searched for under the build dir.
	DexName = "classes.dex"
	// OutName is the file name the selected dex is exported under.
	OutName = "hxo.dex"

	dexPattern    = "**/*.dex"
	targetPattern = "**/" + DexName
)

// ErrDexNotFound is returned by Run when the build dir holds no classes.dex.
var ErrDexNotFound = errors.New("no " + DexName + " found")

// NewDexExport ...
func NewDexExport(inputParser stepconf.InputParser, logger log.Logger, finder DexFinder) *DexExport {
	return &DexExport{inputParser: inputParser, logger: logger, finder: finder}
}

// ProcessConfig ...
func (d DexExport) ProcessConfig() (Config, error) {
	var input Input
	if err := d.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}
	stepconf.Print(input)

	buildDir, err := pathutil.AbsPath(input.BuildDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand build dir (%s): %w", input.BuildDir, err)
	}

	assetsDir, err := pathutil.AbsPath(input.AssetsDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand assets dir (%s): %w", input.AssetsDir, err)
	}

	return Config{
		BuildDir:     buildDir,
		AssetsDir:    assetsDir,
		OutputEnvKey: input.OutputEnvKey,
		VerboseLog:   input.VerboseLog,
	}, nil
}

// Run searches the build dir and selects the dex to export.
func (d DexExport) Run(cfg Config) (Result, error) {
	d.logger.Println()
	d.logger.Infof("Searching in: %s", cfg.BuildDir)

	candidates, err := d.finder.Find(cfg.BuildDir, targetPattern)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search for %s: %w", DexName, err)
	}

	dexFiles, err := d.finder.Find(cfg.BuildDir, dexPattern)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search for dex files: %w", err)
	}

	result := Result{dexFiles: dexFiles, candidates: candidates}
	d.printDexSearchInfo(result)

	if len(candidates) == 0 {
		return result, ErrDexNotFound
	}

	result.selected = Artifact{Path: candidates[0], Name: OutName}

	if len(candidates) > 1 {
		d.printCandidates(result)
	}

	return result, nil
}

// Export copies the selected dex into the assets dir and returns the exported path.
func (d DexExport) Export(result Result, assetsDir string) (string, error) {
	if result.selected.Path == "" {
		return "", ErrDexNotFound
	}

	if err := pathutil.EnsureDirExist(assetsDir); err != nil {
		return "", fmt.Errorf("failed to create assets dir (%s): %w", assetsDir, err)
	}

	d.logger.Debugf("$ %s", result.selected.PrintableCopyCommand(assetsDir))

	if err := result.selected.Export(assetsDir); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", result.selected.Path, err)
	}

	outPath := filepath.Join(assetsDir, result.selected.Name)
	d.logger.Donef("Copied %s → %s", result.selected.Path, outPath)

	return outPath, nil
}

// ExportOutputs exposes the exported dex path to subsequent steps.
func (d DexExport) ExportOutputs(cfg Config, outPath string) error {
	if cfg.OutputEnvKey == "" {
		return nil
	}

	if err := tools.ExportEnvironmentWithEnvman(cfg.OutputEnvKey, outPath); err != nil {
		return fmt.Errorf("failed to export environment variable (%s): %w", cfg.OutputEnvKey, err)
	}
	d.logger.Printf("  Env    [ $%s = %s ]", cfg.OutputEnvKey, outPath)

	return nil
}

func (d DexExport) printDexSearchInfo(result Result) {
	for _, pth := range result.dexFiles {
		if sliceutil.IsStringInSlice(pth, result.candidates) {
			d.logger.Donef("✓ Found dex: %s", pth)
		} else {
			d.logger.Printf("- Found dex: %s", pth)
		}
	}
	d.logger.Println()
}

func (d DexExport) printCandidates(result Result) {
	d.logger.Warnf("Multiple %s files found, using the first one in traversal order:", DexName)
	for _, pth := range result.candidates {
		if pth == result.selected.Path {
			d.logger.Donef("✓ %s", pth)
		} else {
			d.logger.Printf("- %s", pth)
		}
	}
	d.logger.Println()
}
