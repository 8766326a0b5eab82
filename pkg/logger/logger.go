// Package logger 提供全局结构化日志
//
// 默认是 no-op 日志，库代码和测试无需初始化即可调用 Log；
// 可执行程序在启动时调用 InitLogger 把日志写入滚动文件。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 是全局可用的 SugaredLogger
// 消息沿用 "[SystemName] message" 的前缀约定
var Log = zap.NewNop().Sugar()

// Options 日志初始化参数
type Options struct {
	// FilePath 日志文件路径，如 "fourwalls.log"；为空时不写文件
	FilePath string
	// Verbose 为 true 时输出 Debug 级别，并同时输出到标准错误
	Verbose bool
}

// InitLogger 初始化 zap 日志到本地文件（支持滚动）
func InitLogger(opts Options) error {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core
	if opts.FilePath != "" {
		// 文件滚动策略：10MB 每文件，保留3个备份
		lj := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   false,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lj), level))
	}
	if opts.Verbose {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}
	if len(cores) == 0 {
		Log = zap.NewNop().Sugar()
		return nil
	}

	// 添加调用者信息（文件:行号）
	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}

// SetLogger 替换全局日志（测试中用于捕获输出）
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	Log = l
}

// SyncLogger 清理和同步缓冲
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
