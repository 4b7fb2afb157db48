package repository

import (
	"os"
	"strings"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// storageFullMarkers are backend messages that mean the write did not fit.
var storageFullMarkers = []string{
	"item size has exceeded the maximum allowed size",
	"database or disk is full",
	"sqlite_full",
	"could not extend file",
	"no space left on device",
	"sqlstate 53100",
}

func isStorageFullMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, m := range storageFullMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
