package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogWriter owns the outputs created by InitLogger.
type LogWriter struct {
	fileWriter *lumberjack.Logger
}

type logWriterHook struct {
	writer    io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func (hook *logWriterHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *logWriterHook) Fire(entry *logrus.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.writer.Write(line)
	return err
}

// InitLogger configures the standard logrus logger from Config.Logging.
// Console and file outputs are attached as hooks so both can use their own level.
func InitLogger() (*LogWriter, *logrus.Logger) {
	logger := logrus.StandardLogger()
	logWriter := &LogWriter{}

	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.TraceLevel)

	outputLevel := parseLogLevel(Config.Logging.OutputLevel, logrus.InfoLevel)
	var output io.Writer = os.Stdout
	if Config.Logging.OutputStderr {
		output = os.Stderr
	}
	logger.AddHook(&logWriterHook{
		writer: output,
		formatter: &logrus.TextFormatter{
			FullTimestamp: true,
		},
		levels: levelsUpTo(outputLevel),
	})

	maxLevel := outputLevel
	if Config.Logging.FilePath != "" {
		fileLevel := parseLogLevel(Config.Logging.FileLevel, logrus.InfoLevel)
		logWriter.fileWriter = &lumberjack.Logger{
			Filename:   Config.Logging.FilePath,
			MaxSize:    Config.Logging.FileMaxSize,
			MaxBackups: Config.Logging.FileMaxBackups,
		}
		logger.AddHook(&logWriterHook{
			writer:    logWriter.fileWriter,
			formatter: &logrus.JSONFormatter{},
			levels:    levelsUpTo(fileLevel),
		})
		if fileLevel > maxLevel {
			maxLevel = fileLevel
		}
	}

	// skip building entries nobody writes
	logger.SetLevel(maxLevel)

	return logWriter, logger
}

func (lw *LogWriter) Dispose() {
	if lw.fileWriter != nil {
		lw.fileWriter.Close()
		lw.fileWriter = nil
	}
}

func parseLogLevel(level string, fallback logrus.Level) logrus.Level {
	if level == "" {
		return fallback
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("invalid log level %v, using %v", level, fallback)
		return fallback
	}
	return parsed
}

func levelsUpTo(maxLevel logrus.Level) []logrus.Level {
	levels := []logrus.Level{}
	for _, level := range logrus.AllLevels {
		if level <= maxLevel {
			levels = append(levels, level)
		}
	}
	return levels
}
