package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	L = New(zapcore.AddSync(os.Stdout))
}

// New builds the JSON logger used by the service, writing to ws.
func New(ws zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = trimCaller
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// SetDebug 开启 debug 日志
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}

func trimCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	const projectName = "Patchwork"

	if index := strings.Index(caller.File, projectName); index != -1 {
		enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}
