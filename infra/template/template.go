package template

import (
	"bytes"
	"context"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/ridge/must"
	"go.uber.org/zap"
)

const (
	// Dockerfile is the name of container definition file
	Dockerfile = "Dockerfile"

	// DockerIgnore is the name of file listing paths excluded from build context
	DockerIgnore = ".dockerignore"

	// DiveCI is the name of dive CI config file
	DiveCI = ".dive-ci"
)

//go:embed files
var files embed.FS

var sources = map[string]string{
	Dockerfile:   "files/Dockerfile",
	DockerIgnore: "files/dockerignore",
	DiveCI:       "files/dive-ci",
}

// Files is the list of files installed into the project
var Files = []string{Dockerfile, DockerIgnore, DiveCI}

// Content returns bundled content of template file
func Content(name string) []byte {
	source, exists := sources[name]
	if !exists {
		panic(errors.Errorf("unknown template file %s", name))
	}
	return must.Bytes(files.ReadFile(source))
}

// Data is passed to template files while rendering
type Data struct {
	// ProjectName is the name of the project
	ProjectName string
}

// Render renders template file
func Render(name string, data Data) ([]byte, error) {
	tpl, err := template.New(name).Parse(string(Content(name)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	buf := &bytes.Buffer{}
	if err := tpl.Execute(buf, data); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Install creates template files missing in the project directory, existing files are never overwritten
func Install(ctx context.Context, dir string, data Data) error {
	log := logger.Get(ctx)
	for _, name := range Files {
		dst := filepath.Join(dir, name)
		_, err := os.Stat(dst)
		switch {
		case err == nil:
			log.Warn(name+" already exists and won't be overwritten.", zap.String("path", dst))
			continue
		case !os.IsNotExist(err):
			return errors.WithStack(err)
		}

		content, err := Render(name, data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, content, 0o644); err != nil {
			return errors.WithStack(err)
		}
		log.Debug("Creating `"+dst+"`", zap.String("path", dst))
	}
	return nil
}
