package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/nasdeck/internal/ux"
)

// ConfigFile is the name of the analysis file Init writes.
const ConfigFile = "analysis.yaml"

var configTemplate = `name: plate-modes
sol: 103
output: out/plate-modes.bdf

global:
  case_control:
    - ECHO = NONE
    - DISP = ALL

params:
  POST: -1
  AUTOSPC: true

subcases:
  1:
    spc: 1
    method: 10
    case_control:
      - SPC = ${SPC}
      - METHOD = ${METHOD}

imports:
  - path: model/plate.bdf
  - path: model/eigrl.bdf
    stage: after
    block-list: [ENDDATA, PARAM]
`

var plateTemplate = `$ 100 x 100 plate, one CQUAD4
GRID,1,,0.,0.,0.
GRID,2,,100.,0.,0.
GRID,3,,100.,100.,0.
GRID,4,,0.,100.,0.
CQUAD4,1,1,1,2,3,4
PSHELL,1,1,2.
MAT1,1,70000.,,.33,2.7-9
$ clamp edge 1-4
SPC1,1,123456,1,4
$ stale solver setting
PARAM,POST,0
EIGRL,10,,,10
ENDDATA
`

var eigrlTemplate = `$ first ten modes
EIGRL,10,,,10
ENDDATA
`

// Init writes an example analysis file and the decks it imports into
// targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", ConfigFile, targetDir)
	}

	modelDir := filepath.Join(targetDir, "model")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		return fmt.Errorf("creating model/: %w", err)
	}

	files := []struct {
		path, body string
	}{
		{filepath.Join(modelDir, "plate.bdf"), plateTemplate},
		{filepath.Join(modelDir, "eigrl.bdf"), eigrlTemplate},
		{configPath, configTemplate},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.body), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized example analysis%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s%s%s        analysis definition\n", ux.Cyan, ConfigFile, ux.Reset)
	fmt.Printf("    %smodel/plate.bdf%s      bulk data, imported before synthesis\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %smodel/eigrl.bdf%s      eigenvalue method, imported after\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s%s%s to describe your analysis\n", ux.Cyan, ConfigFile, ux.Reset)
	fmt.Printf("    2. Run %snasdeck build --dry-run%s to preview\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %snasdeck build%s to write the deck\n\n", ux.Cyan, ux.Reset)

	return nil
}
