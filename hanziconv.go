// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/docopt/docopt-go"
	"golang.org/x/text/transform"

	"github.com/hanziconv/hanziconv/hanzi"
	"github.com/hanziconv/hanziconv/hanzi/charmap"
	"github.com/hanziconv/hanziconv/hanzi/logger"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

func loadConfig(arguments map[string]interface{}) *hanzi.Config {
	filename, given := arguments["--conf"].(string)
	if !given {
		return hanzi.DefaultConfig()
	}
	config, err := hanzi.LoadConfig(filename)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}
	return config
}

// implements the `hanziconv t2s` and `hanziconv s2t` commands
func doConvert(conv *hanzi.Converter, dir charmap.Direction, filename string, quiet bool) {
	input := os.Stdin
	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			log.Fatal("Could not open input file: ", err.Error())
		}
		defer file.Close()
		input = file
	}

	n, err := io.Copy(os.Stdout, transform.NewReader(input, conv.Transformer(dir)))
	if err != nil {
		log.Fatal("Conversion failed: ", err.Error())
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "converted %s\n", bytefmt.ByteSize(uint64(n)))
	}
}

func main() {
	hanzi.SetVersionString(version, commit)
	usage := `hanziconv.
Usage:
	hanziconv t2s [--conf <filename>] [--quiet] [<file>]
	hanziconv s2t [--conf <filename>] [--quiet] [<file>]
	hanziconv same [--conf <filename>] <text1> <text2>
	hanziconv -h | --help
	hanziconv --version
Options:
	--conf <filename>  Configuration file to use (defaults are used if omitted).
	--quiet            Don't show the conversion summary line.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, hanzi.Ver)

	config := loadConfig(arguments)
	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully: ", err.Error())
	}

	conv, err := hanzi.NewConverter(config, logman)
	if err != nil {
		log.Fatal("Converter did not load successfully: ", err.Error())
	}

	filename, _ := arguments["<file>"].(string)
	quiet := arguments["--quiet"].(bool)

	if arguments["t2s"].(bool) {
		doConvert(conv, charmap.Simplified, filename, quiet)
	} else if arguments["s2t"].(bool) {
		doConvert(conv, charmap.Traditional, filename, quiet)
	} else if arguments["same"].(bool) {
		same := conv.Same(arguments["<text1>"].(string), arguments["<text2>"].(string))
		fmt.Println(same)
		if !same {
			os.Exit(1)
		}
	}
}
