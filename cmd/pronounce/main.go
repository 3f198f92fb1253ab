// Pronounce - тренажёр произношения.
//
// Работает в системном трее: показывает эталонную запись фразы, записывает
// голос с микрофона и рисует обе волны для сравнения.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"pronounce/internal/app"
	"pronounce/internal/config"
	"pronounce/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	configPath := pflag.StringP("config", "c", config.DefaultPath(), "path to config.json")
	version := pflag.BoolP("version", "v", false, "print version and exit")
	pflag.Parse()

	if *version {
		fmt.Println("pronounce", Version)
		return
	}

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(func() {
		run(*configPath)
	})
}

func run(configPath string) {
	application, err := app.New(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pronounce: %v\n", err)
		os.Exit(1)
	}
	application.Run()
}
