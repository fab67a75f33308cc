package main

import (
	"io"
	"log/slog"
	"strconv"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
