package log

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Op     string         `json:"op,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level, op string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Op: op, Fields: fields}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(op string, fields map[string]any)             { write("info", op, nil, fields) }
func Warn(op string, fields map[string]any)             { write("warn", op, nil, fields) }
func Error(op string, err error, fields map[string]any) { write("error", op, err, fields) }
