package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Settings struct {
	Path       string `yaml:"Path"`
	Name       string `yaml:"Name"`
	Ext        string `yaml:"Ext"`
	TimeFormat string `yaml:"TimeFormat"`
	Level      string `yaml:"Level"` // 最低输出级别，默认DEBUG
}

type logLevel int

const (
	DEBUG logLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

const (
	flags              = log.LstdFlags | log.Lmicroseconds
	defaultCallerDepth = 2
	bufferSize         = 1e4 // 日志channel的缓冲大小
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// ParseLevel 把配置中的级别名转换成logLevel，无法识别时返回DEBUG
func ParseLevel(name string) logLevel {
	for i, flag := range levelFlags {
		if strings.EqualFold(flag, name) {
			return logLevel(i)
		}
	}
	if strings.EqualFold(name, "WARNING") {
		return WARNING
	}
	return DEBUG
}

type logEntry struct {
	msg   string
	level logLevel
}

// Logger 日志消息先写入entryChan，由单独的goroutine写到输出，entryPool复用消息对象
type Logger struct {
	logFile   *os.File
	logger    *log.Logger
	level     logLevel
	entryChan chan *logEntry
	entryPool *sync.Pool
	closeOnce sync.Once
	done      chan struct{}
}

// DefaultLogger 默认日志对象
var DefaultLogger = NewStdoutLogger()

func newLogger(out io.Writer, level logLevel) *Logger {
	return &Logger{
		logger:    log.New(out, "", flags),
		level:     level,
		entryChan: make(chan *logEntry, bufferSize),
		entryPool: &sync.Pool{
			New: func() any {
				return &logEntry{}
			},
		},
		done: make(chan struct{}),
	}
}

// NewStdoutLogger 新建一个向标准输出写日志的logger
func NewStdoutLogger() *Logger {
	return NewWriterLogger(os.Stdout, DEBUG)
}

// NewWriterLogger 新建一个向w写日志的logger，低于level的日志被丢弃
func NewWriterLogger(w io.Writer, level logLevel) *Logger {
	logger := newLogger(w, level)
	go func() {
		defer close(logger.done)
		for e := range logger.entryChan {
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
	}()
	return logger
}

func logFileName(settings *Settings) string {
	return fmt.Sprintf("%s-%s.%s", settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
}

// NewFileLogger 同时写标准错误和日志文件，日期变化时切换到新的日志文件
func NewFileLogger(settings *Settings) (*Logger, error) {
	fileName := logFileName(settings)
	logFile, err := mustOpen(fileName, settings.Path)
	if err != nil {
		return nil, fmt.Errorf("open log file error: %w", err)
	}
	logger := newLogger(io.MultiWriter(os.Stderr, logFile), ParseLevel(settings.Level))
	logger.logFile = logFile

	go func() {
		defer close(logger.done)
		for e := range logger.entryChan {
			name := logFileName(settings)
			if filepath.Join(settings.Path, name) != logger.logFile.Name() {
				logFile, err := mustOpen(name, settings.Path)
				if err != nil {
					panic("open log file " + name + " failed: " + err.Error())
				}
				_ = logger.logFile.Close()
				logger.logFile = logFile
				logger.logger = log.New(io.MultiWriter(os.Stderr, logFile), "", flags)
			}
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
		_ = logger.logFile.Close()
	}()

	return logger, nil
}

// Setup 使用文件logger替换DefaultLogger
func Setup(settings *Settings) error {
	logger, err := NewFileLogger(settings)
	if err != nil {
		return err
	}
	SetDefault(logger)
	return nil
}

// SetDefault 替换DefaultLogger，旧的logger会被关闭
func SetDefault(logger *Logger) {
	old := DefaultLogger
	DefaultLogger = logger
	old.Close()
}

// Close 写完channel中剩余的日志后返回，之后不能再写日志
func (logger *Logger) Close() {
	logger.closeOnce.Do(func() {
		close(logger.entryChan)
	})
	<-logger.done
}

// Output 发送一个日志消息到logger
func (logger *Logger) Output(level logLevel, callerDepth int, msg string) {
	if level < logger.level {
		return
	}
	var formattedMsg string
	_, file, line, ok := runtime.Caller(callerDepth)
	if ok {
		formattedMsg = fmt.Sprintf("[%s][%s:%d] %s", levelFlags[level], filepath.Base(file), line, msg)
	} else {
		formattedMsg = fmt.Sprintf("[%s] %s", levelFlags[level], msg)
	}

	entry := logger.entryPool.Get().(*logEntry)
	entry.msg = formattedMsg
	entry.level = level
	logger.entryChan <- entry
}

func Debug(v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintln(v...))
}

func Warnf(format string, v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintf(format, v...))
}

// Fatal 写完日志后退出进程
func Fatal(v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintln(v...))
	DefaultLogger.Close()
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintf(format, v...))
	DefaultLogger.Close()
	os.Exit(1)
}
