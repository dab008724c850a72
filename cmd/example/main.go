package main

import (
	"fmt"
	"time"

	"github.com/yamaaaaaa31/logust"
	"github.com/yamaaaaaa31/logust/level"
	"github.com/yamaaaaaa31/logust/record"
)

func section(title string) {
	fmt.Println("---------------------------------------------------")
	fmt.Println(title)
}

func main() {
	fmt.Println("===================================================")
	fmt.Println("  logust demo: console, file, callbacks, binding   ")
	fmt.Println("===================================================")

	section("1. Default logger (console only)")
	logger := logust.New(level.INFO)
	logger.Debug("this won't show, default level is INFO")
	logger.Info("server starting up")
	logger.Warning("cache miss rate <yellow>above threshold</yellow>")

	section("2. Adding a rotating, compressed file sink")
	if _, err := logger.Add("app.log",
		logust.WithFileLevel(level.DEBUG),
		logust.WithFileRotation("10 MB"),
		logust.WithFileRetention("7 days"),
		logust.WithFileCompression(true),
	); err != nil {
		fmt.Println("failed to add file handler:", err)
		return
	}
	logger.Info("this line goes to both console and app.log")

	section("3. Binding request-scoped context")
	reqLogger := logger.Bind(map[string]string{"request_id": "abc-123"})
	reqLogger.Info("handling request")
	reqLogger.Error("request failed", logust.WithException("Traceback:\n  ..."))

	section("4. Structured callback for metrics/alerting")
	var errorCount int
	logger.AddCallback(func(v record.View) {
		if v["level"] == "ERROR" || v["level"] == "CRITICAL" {
			errorCount++
		}
	}, level.WARNING)
	reqLogger.Critical("disk almost full")

	section("5. Logging by level name")
	if err := logger.Log("SUCCESS", "deploy finished"); err != nil {
		fmt.Println("unknown level:", err)
	}

	time.Sleep(150 * time.Millisecond) // let any async file writes land
	if err := logger.Complete(); err != nil {
		fmt.Println("flush error:", err)
	}
	fmt.Printf("observed %d error-or-above records via callback\n", errorCount)

	if err := logger.Close(); err != nil {
		fmt.Println("shutdown error:", err)
	}
}
