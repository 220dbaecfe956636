package dive

import (
	"context"
	"os"
	"path/filepath"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/kedro-docker/infra/template"
)

// ContainerConfigPath is the location where dive expects CI config inside its container
const ContainerConfigPath = "/.dive-ci"

// Config is the CI config of dive
type Config struct {
	Rules map[string]interface{} `yaml:"rules"`
}

// Resolve returns host path of CI config to mount into dive container.
// If file does not exist, bundled default config is stored in temporary file which is removed by returned cleanup function.
func Resolve(ctx context.Context, path string) (string, func(), error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", nil, errors.WithStack(err)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		if err := Validate(path); err != nil {
			return "", nil, err
		}
		return path, func() {}, nil
	case err != nil && !os.IsNotExist(err):
		return "", nil, errors.WithStack(err)
	}

	logger.Get(ctx).Warn("`"+path+"` file not found, using default CI config", zap.String("path", path))

	f, err := os.CreateTemp("", "dive-ci-*")
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	defaultPath := f.Name()
	cleanup := func() {
		_ = os.Remove(defaultPath)
	}

	_, err = f.Write(template.Content(template.DiveCI))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, errors.WithStack(err)
	}
	return defaultPath, cleanup, nil
}

// Validate checks that CI config is a valid YAML document
func Validate(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return errors.Wrapf(err, "dive CI config %s is invalid", path)
	}
	return nil
}
