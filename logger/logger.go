package logger

import (
	"encoding/json"
	"os"
	"time"
)

type Field struct {
	Key   string
	Value interface{}
}

func log(level, msg string, fields []Field, err error) {
	entry := map[string]interface{}{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(entry)
}

func Info(msg string, fields ...Field) {
	log("info", msg, fields, nil)
}

// Warn records a degraded-but-handled condition, e.g. a feed falling back to defaults.
func Warn(msg string, err error, fields ...Field) {
	log("warn", msg, fields, err)
}

func Error(msg string, err error, fields ...Field) {
	log("error", msg, fields, err)
}

func Debug(msg string, fields ...Field) {
	if os.Getenv("DEBUG") == "1" {
		log("debug", msg, fields, nil)
	}
}

func FieldKV(key string, value interface{}) Field { return Field{Key: key, Value: value} }
