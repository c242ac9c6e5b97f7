package logger

import (
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

var (
	mu           sync.Mutex
	logger       *zap.Logger
	loggerConfig zap.Config
	namedLevels  []namedLevel
	namedGlobs   = make(map[string]glob.Glob)
	namedLoggers = make(map[string]*zap.Logger)
)

type namedLevel struct {
	name  string
	level zap.AtomicLevel
}

func init() {
	loggerConfig = zap.NewDevelopmentConfig()
	logger, _ = loggerConfig.Build()
}

// SetDefault replaces the default logger
// you need to call SetNamedLevels after in case you have named loggers,
// otherwise they will use the old logger
func SetDefault(l *zap.Logger, conf zap.Config) {
	mu.Lock()
	defer mu.Unlock()
	*logger = *l
	loggerConfig = conf
}

// SetNamedLevels sets the namedLevels for named loggers
// it also supports glob patterns for names, like "common.*"
func SetNamedLevels(nls []NamedLevel) {
	mu.Lock()
	defer mu.Unlock()
	namedLevels = namedLevels[:0]

	var minLevel = logger.Level()
	for _, nl := range nls {
		l, err := zap.ParseAtomicLevel(nl.Level)
		if err != nil {
			continue
		}
		namedLevels = append(namedLevels, namedLevel{name: nl.Name, level: l})
		g, err := glob.Compile(nl.Name)
		if err == nil {
			namedGlobs[nl.Name] = g
		}

		if l.Level() < minLevel {
			minLevel = l.Level()
		}
	}

	if minLevel < logger.Level() {
		// recreate logger if the min level is lower than the current min one
		loggerConfig.Level = zap.NewAtomicLevelAt(minLevel)
		if l, err := loggerConfig.Build(); err == nil {
			*logger = *l
		}
	}

	for name, nl := range namedLoggers {
		newCore := zap.New(logger.Core()).Named(name).WithOptions(
			zap.IncreaseLevel(getLevel(name)),
		)
		*nl = *newCore
	}
}

func Default() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// getLevel returns the level for the given name
// it return the first matching name or glob pattern whatever comes first
func getLevel(name string) zap.AtomicLevel {
	for _, nl := range namedLevels {
		if nl.name == name {
			return nl.level
		}
		if g, ok := namedGlobs[nl.name]; ok && g.Match(name) {
			return nl.level
		}
	}
	return zap.NewAtomicLevelAt(logger.Level())
}

// NewNamed returns the logger registered under the name, creating it on the first call
// The returned pointer stays valid after SetNamedLevels or ApplyGlobal
func NewNamed(name string, fields ...zap.Field) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, nameExists := namedLoggers[name]; nameExists {
		return l
	}

	l := zap.New(logger.Core()).Named(name).WithOptions(
		zap.IncreaseLevel(getLevel(name)),
		zap.Fields(fields...),
	)
	namedLoggers[name] = l
	return l
}
