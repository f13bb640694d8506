package utils

import (
	"fmt"
	"os"

	"github.com/uj-wmii-pwj-2025/EmiliaBiros-09-battleships/pkg/game"
)

//LoadOrCreateMap reads the serialized board from path. When the file
//does not exist a fresh board is generated, saved to path and returned.
func LoadOrCreateMap(path string, gen *game.Generator) (string, error) {
	bytes, err := os.ReadFile(path)
	if err == nil {
		return string(bytes), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("read map file: %w", err)
	}

	mapString, err := gen.Generate()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(mapString+"\n"), 0644); err != nil {
		return "", fmt.Errorf("save generated map: %w", err)
	}
	return mapString, nil
}
