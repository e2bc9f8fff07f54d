/*
Command spellserve starts the msgpack stdio IPC server: check/suggest/
mutate/stats requests arrive length-prefixed on stdin, responses are
written length-prefixed to stdout (pkg/server).

	spellserve -aff en_US.aff -dic en_US.dic
	spellserve -aff en_US.aff -dic en_US.dic -d
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/affixspell/pkg/checker"
	"github.com/bastiangx/affixspell/pkg/config"
	"github.com/bastiangx/affixspell/pkg/server"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "spellserve"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the checker and IPC server; it
// does not implement checking logic itself.
func main() {
	sigHandler()

	affPath := flag.String("aff", "", "Path to the .aff affix file (required)")
	dicPath := flag.String("dic", "", "Path to the .dic dictionary file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a config.toml file")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *affPath == "" {
		log.Fatal("missing required -aff flag")
		os.Exit(1)
	}

	cfg, resolvedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
		os.Exit(1)
	}
	log.Debugf("using config: %s", resolvedPath)

	affText, err := os.ReadFile(*affPath)
	if err != nil {
		log.Fatalf("reading affix file: %v", err)
		os.Exit(1)
	}

	var dicText []byte
	if *dicPath != "" {
		dicText, err = os.ReadFile(*dicPath)
		if err != nil {
			log.Fatalf("reading dictionary file: %v", err)
			os.Exit(1)
		}
	}

	c, err := checker.NewWithCacheCapacity(string(affText), string(dicText), cfg.Suggest.CacheCapacity)
	if err != nil {
		log.Fatalf("initializing checker: %v", err)
		os.Exit(1)
	}

	showStartupInfo(c.GetStats().Words)

	srv := server.NewServer(c)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
		os.Exit(1)
	}
}

func showStartupInfo(words int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" spellserve ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary words: %d", words)
	log.Info("status: ready")
	println("===========")

	log.SetLevel(currentLevel)
}
