/*
Command spellcli is an interactive prompt for testing affix/dic pairs
against the checker package: type a word, see whether it's correct, and
see ranked suggestions when it isn't.

	spellcli -aff en_US.aff -dic en_US.dic
	spellcli -aff en_US.aff -dic en_US.dic -personal my_words.txt -d
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/affixspell/internal/cli"
	"github.com/bastiangx/affixspell/pkg/checker"
	"github.com/bastiangx/affixspell/pkg/config"
	"github.com/charmbracelet/log"
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

func main() {
	sigHandler()

	affPath := flag.String("aff", "", "Path to the .aff affix file (required)")
	dicPath := flag.String("dic", "", "Path to the .dic dictionary file")
	personalPath := flag.String("personal", "", "Path to a personal dictionary file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cacheCapacity := flag.Int("cache", 0, "Suggestion validation cache capacity (0 uses the config default)")

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

	cfg := config.DefaultConfig()
	capacity := cfg.Suggest.CacheCapacity
	if *cacheCapacity > 0 {
		capacity = *cacheCapacity
	}

	c, err := checker.NewWithCacheCapacity(string(affText), string(dicText), capacity)
	if err != nil {
		log.Fatalf("initializing checker: %v", err)
		os.Exit(1)
	}
	log.Debugf("loaded checker: words=%d", c.GetStats().Words)

	if *personalPath != "" {
		personalText, err := os.ReadFile(*personalPath)
		if err != nil {
			log.Fatalf("reading personal dictionary: %v", err)
			os.Exit(1)
		}
		c.Personal(string(personalText))
		log.Debugf("loaded personal dictionary: words=%d", c.GetStats().Words)
	}

	handler := cli.NewInputHandler(c)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
		os.Exit(1)
	}
}
