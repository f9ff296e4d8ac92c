package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataPath    string
	DBPath      string
	JournalPath string
	LogLevel    string
}

func New(dataPath, logLevel string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:    dataPath,
		DBPath:      filepath.Join(dataPath, ".wird", "wird.db"),
		JournalPath: filepath.Join(dataPath, "journal"),
		LogLevel:    logLevel,
	}, nil
}
