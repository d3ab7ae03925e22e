package helper

import (
	"os"
	"path/filepath"
)

// SystemConfigDir is consulted last when a config file is not found locally.
const SystemConfigDir = "/etc/facilities"

// GetCfgPath resolves a config filename. Absolute paths are returned as-is;
// relative names are looked up in the working directory, then ./configs,
// and finally SystemConfigDir.
func GetCfgPath(filename string) string {
	if filename == "" {
		panic("filename cannot be empty")
	}
	if filepath.IsAbs(filename) {
		return filename
	}

	wd, err := os.Getwd()
	if err == nil && wd != "" {
		for _, dir := range []string{wd, filepath.Join(wd, "configs")} {
			if p, ok := existing(filepath.Join(dir, filename)); ok {
				return p
			}
		}
	}

	return filepath.Join(SystemConfigDir, filename)
}

func existing(path string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return abs, true
}
