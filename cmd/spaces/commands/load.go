// Package commands implements the spaces CLI subcommands.
package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces"
	"github.com/tessera-ai/spaces/errors"
	"github.com/tessera-ai/spaces/logger"
)

// loadDescriptor resolves a command-line space argument. Accepted forms,
// tried in order:
//
//	a path to a .json/.yaml/.yml descriptor file
//	a shorthand: binary, naturals, discrete:N
//	an inline JSON descriptor: {"type":"discrete","size":5}
func loadDescriptor(arg string) (spaces.Descriptor, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return loadDescriptorFile(arg)
	}

	if desc, ok, err := parseShorthand(arg); ok {
		return desc, err
	}

	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		var desc spaces.Descriptor
		if err := json.Unmarshal([]byte(arg), &desc); err != nil {
			return spaces.Descriptor{}, err
		}
		return desc, nil
	}

	return spaces.Descriptor{}, errors.Newf("not a descriptor file, shorthand, or inline JSON: %q", arg)
}

func loadDescriptorFile(path string) (spaces.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spaces.Descriptor{}, errors.Wrapf(err, "read descriptor %s", path)
	}

	logger.Logger.Debugw("loaded descriptor file",
		logger.FieldPath, path,
		logger.FieldSize, len(data),
	)

	var desc spaces.Descriptor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &desc)
	default:
		err = json.Unmarshal(data, &desc)
	}
	if err != nil {
		return spaces.Descriptor{}, errors.Wrapf(err, "decode descriptor %s", path)
	}
	return desc, nil
}

func parseShorthand(arg string) (spaces.Descriptor, bool, error) {
	switch {
	case arg == "binary":
		return spaces.BinaryDescriptor(), true, nil
	case arg == "naturals":
		return spaces.NaturalsDescriptor(), true, nil
	case strings.HasPrefix(arg, "discrete:"):
		raw := strings.TrimPrefix(arg, "discrete:")
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			return spaces.Descriptor{}, true, errors.Newf("discrete shorthand needs a non-negative size, got %q", raw)
		}
		return spaces.DiscreteDescriptor(size), true, nil
	case arg == "discrete":
		return spaces.Descriptor{}, true, errors.New("discrete shorthand needs a size, e.g. discrete:5")
	}
	return spaces.Descriptor{}, false, nil
}
