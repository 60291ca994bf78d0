package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/qtschema/internal/config"
	"github.com/grovetools/qtschema/pkg/langs"
	"github.com/grovetools/qtschema/pkg/quicktype"
)

// sessionFlags are shared by the commands that build a merged schema.
type sessionFlags struct {
	baseName  string
	schemas   []string
	languages []string
	validate  bool
	uuidNames bool
}

type target struct {
	lang   langs.Language
	output string
}

type session struct {
	qt      *quicktype.Context
	targets []target
	logger  *logrus.Logger
}

// loadProject returns the explicit project file, the one found in the working
// directory, or an empty project when neither exists.
func loadProject() (*config.Project, error) {
	path := configFile
	if path == "" {
		found, err := config.Find(".")
		if errors.Is(err, config.ErrNoProject) {
			return &config.Project{}, nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}
	return config.Load(path)
}

func (f *sessionFlags) open() (*session, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(env)
	if err != nil {
		return nil, err
	}
	project, err := loadProject()
	if err != nil {
		return nil, err
	}

	baseName := project.BaseName
	if f.baseName != "" {
		baseName = f.baseName
	}
	if baseName == "" {
		return nil, errors.New("no base name: set base_name in the project file or pass --base-name")
	}

	prefix := project.TempPrefix
	if env.TempPrefix != "" {
		prefix = env.TempPrefix
	}
	opts := []quicktype.Option{
		quicktype.WithLogger(logger),
		quicktype.WithExecutable(env.Executable),
		quicktype.WithFallback(env.Fallback),
		quicktype.WithTempDir(env.TempDir),
		quicktype.WithPrefix(prefix),
		quicktype.WithValidation(project.Validate || f.validate),
	}
	if env.UUIDNames || f.uuidNames {
		opts = append(opts, quicktype.WithIDFunc(quicktype.UUIDFunc))
	}
	if len(project.OverrideArgs) > 0 {
		opts = append(opts, quicktype.WithOverrideArgs(project.OverrideArgs...))
	}
	qt := quicktype.NewContext(baseName, opts...)

	for _, path := range append(project.Schemas, f.schemas...) {
		fragment, err := config.ReadFragment(path)
		if err != nil {
			return nil, err
		}
		if err := qt.AddSchema(fragment); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.WithField("schema", path).Debug("added schema fragment")
	}

	s := &session{qt: qt, logger: logger}
	if len(f.languages) > 0 {
		for _, name := range f.languages {
			lang, err := langs.Lookup(name)
			if err != nil {
				return nil, err
			}
			s.targets = append(s.targets, target{lang: lang})
		}
		return s, nil
	}
	for _, t := range project.Targets {
		lang, err := t.Selection()
		if err != nil {
			return nil, err
		}
		s.targets = append(s.targets, target{lang: lang, output: t.Output})
	}
	return s, nil
}
