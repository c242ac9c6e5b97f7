package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Config struct {
	Production     bool         `yaml:"production"`
	DefaultLevel   string       `yaml:"defaultLevel"`
	Levels         []NamedLevel `yaml:"levels"` // first match will be used
	AddOutputPaths []string     `yaml:"outputPaths"`
	DisableStdErr  bool         `yaml:"disableStdErr"`
	Format         LogFormat    `yaml:"format"`
}

// Build converts the config into a zap config
func (l Config) Build() zap.Config {
	var conf zap.Config
	if l.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}
	encConfig := conf.EncoderConfig
	switch l.Format {
	case PlaintextOutput:
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.Encoding = "console"
	case JSONOutput:
		encConfig.MessageKey = "msg"
		encConfig.TimeKey = "ts"
		encConfig.LevelKey = "level"
		encConfig.NameKey = "logger"
		encConfig.CallerKey = "caller"
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.Encoding = "json"
	default:
		// default is ColorizedOutput
		conf.Encoding = "console"
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.EncoderConfig = encConfig

	if len(l.AddOutputPaths) > 0 {
		conf.OutputPaths = append(conf.OutputPaths, l.AddOutputPaths...)
	}
	if l.DisableStdErr {
		paths := conf.OutputPaths[:0]
		for _, path := range conf.OutputPaths {
			if path != "stderr" {
				paths = append(paths, path)
			}
		}
		conf.OutputPaths = paths
	}

	if defaultLevel, err := zap.ParseAtomicLevel(l.DefaultLevel); err == nil {
		conf.Level = defaultLevel
	}
	for _, v := range l.Levels {
		if lev, err := zap.ParseAtomicLevel(v.Level); err == nil {
			// we need to have a minimum level of all named loggers for the main logger
			if lev.Level() < conf.Level.Level() {
				conf.Level.SetLevel(lev.Level())
			}
		}
	}
	return conf
}

// ApplyGlobal builds the logger and replaces the default one
func (l Config) ApplyGlobal() {
	conf := l.Build()
	lg, err := conf.Build()
	if err != nil {
		Default().Fatal("can't build logger", zap.Error(err))
	}
	SetDefault(lg, conf)
	SetNamedLevels(l.Levels)
}

// LevelsFromStr parses a string of the form "name1=DEBUG;prefix*=WARN;*=ERROR" into a slice of NamedLevel
// a value without a name is applied to all loggers
func LevelsFromStr(s string) (levels []NamedLevel) {
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		key, value, found := strings.Cut(kv, "=")
		if !found {
			key, value = "*", kv
		}
		if _, err := zap.ParseAtomicLevel(value); err != nil {
			continue
		}
		levels = append(levels, NamedLevel{Name: key, Level: value})
	}
	return levels
}
