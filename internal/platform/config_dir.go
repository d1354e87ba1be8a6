package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
}

type platformService struct {
	goos string
}

// NewService returns an implementation for the running OS.
func NewService() Service {
	return &platformService{goos: runtime.GOOS}
}

// GetConfigDir returns the OS-standard configuration directory, falling back
// to a path under the home directory when the standard lookup fails.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(service.goos, homeDir), nil
}

func fallbackConfigDir(goos, homeDir string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support")
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming")
	default:
		return filepath.Join(homeDir, ".config")
	}
}
