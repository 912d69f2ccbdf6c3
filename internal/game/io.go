package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/not-fl3/particles-editor/internal/particles"
)

var errNoPath = errors.New("no file path")

// fileDialog asks the user for a file to import from or export to.
type fileDialog interface {
	Open() (string, error)
	Save() (string, error)
}

var emitterFilters = zenity.FileFilters{{
	Name:     "Emitter",
	Patterns: []string{"*.json"},
}}

type zenityDialog struct{}

func (zenityDialog) Open() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Import emitter"),
		emitterFilters,
	)
}

func (zenityDialog) Save() (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Export emitter"),
		zenity.Filename("emitter.json"),
		zenity.ConfirmOverwrite(),
		emitterFilters,
	)
}

// exportDialog asks for a path and writes the emitter config there.
// Cancelling the dialog is not an error.
func (e *Editor) exportDialog() error {
	path, err := e.dialog.Save()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("export dialog: %w", err)
	}
	return e.SaveConfig(path)
}

// importDialog asks for a path and loads the emitter config from it.
func (e *Editor) importDialog() error {
	path, err := e.dialog.Open()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("import dialog: %w", err)
	}
	return e.LoadConfig(path)
}

// SaveConfig writes the emitter config as JSON.
func (e *Editor) SaveConfig(path string) error {
	if path == "" {
		return errNoPath
	}
	data, err := particles.Marshal(e.emitter.Config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export emitter: %w", err)
	}
	Logger().Info("exported emitter", "path", path)
	e.lastPath, e.lastErr = path, nil
	return nil
}

// LoadConfig replaces the emitter config with the one stored at path. The
// current config is kept when the file cannot be read or decoded.
func (e *Editor) LoadConfig(path string) error {
	if path == "" {
		return errNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import emitter: %w", err)
	}
	cfg, err := particles.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("import emitter %s: %w", path, err)
	}
	e.apply(cfg)
	Logger().Info("imported emitter", "path", path)
	e.lastPath, e.lastErr = path, nil
	return nil
}
