// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/greenpak/device"
	"github.com/ezrec/greenpak/image"
	"github.com/ezrec/greenpak/patch"
	"github.com/ezrec/greenpak/reg"
	"github.com/ezrec/greenpak/translate"
	"github.com/ezrec/greenpak/verify"
)

var f = translate.From

func main() {
	var all bool
	var input string
	var inputHex string
	var defaults string
	var script string
	var output string
	var outputHex string
	var hexdump bool
	var deviceType string
	var controlCode string
	var verbose bool

	flag.BoolVar(&all, "all", false, "Verify every signal, not only the canonical one")
	flag.StringVar(&input, "i", "", "Bits file to load")
	flag.StringVar(&inputHex, "ih", "", "Intel HEX file to load")
	flag.StringVar(&defaults, "defaults", "", "Directory of factory default .hex images; loads the device's image first")
	flag.StringVar(&script, "p", "", "Starlark patch script to apply")
	flag.StringVar(&output, "o", "", "Bits file to write ('-' for stdout)")
	flag.StringVar(&outputHex, "oh", "", "Intel HEX file to write ('-' for stdout)")
	flag.BoolVar(&hexdump, "x", false, "Hex dump the register image")
	flag.StringVar(&deviceType, "d", "SLG46826", "Device type")
	flag.StringVar(&controlCode, "c", "", "Control code spec (e.g. 01XX) to encode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Nothing touches a register image before the layout is proven.
	verify.Must()

	if all {
		verify.MustSweep(func() verify.Layout { return &reg.Registers{} })
	}

	if verbose {
		log.Printf("%v", f("register layout verified"))
	}

	desc, err := device.Lookup(deviceType)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var regs reg.Registers

	if len(defaults) != 0 {
		regs, err = desc.LoadDefaultConfig(os.DirFS(defaults))
		if err != nil {
			log.Fatalf("%v: %v", defaults, err)
		}
	}

	if len(inputHex) != 0 {
		inf, err := os.Open(inputHex)
		if err != nil {
			log.Fatalf("%v: %v", inputHex, err)
		}
		defer inf.Close()

		regs, err = image.ReadHex(inf)
		if err != nil {
			log.Fatalf("%v: %v", inputHex, err)
		}
	}

	if len(input) != 0 {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()

		regs, err = image.ReadBits(inf)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	if len(script) != 0 {
		p := &patch.Patcher{Regs: &regs, Verbose: verbose}
		if err := p.Run(script, nil); err != nil {
			log.Fatal(err)
		}
	}

	if verbose {
		for sig := range regs.SetSignals() {
			log.Printf("%v", f("%v = 1", sig))
		}
	}

	if len(controlCode) != 0 {
		value, err := device.ControlCodeByte(controlCode)
		if err != nil {
			log.Fatalf("%v: %v", controlCode, err)
		}
		page, data := desc.ControlCodePage(regs, value)
		log.Printf("%v", f("%v control code %v: byte 0x%02x, nvm page %v", desc.Type, controlCode, value, page))
		if err := image.HexDump(os.Stdout, data, int(page)*device.PAGE_SIZE); err != nil {
			log.Fatal(err)
		}
	}

	if hexdump {
		if err := image.HexDump(os.Stdout, regs.Bytes(), 0); err != nil {
			log.Fatal(err)
		}
	}

	writeImage(output, regs, image.WriteBits)
	writeImage(outputHex, regs, image.WriteHex)
}

// writeImage writes regs to path, '-' being stdout and "" doing nothing.
func writeImage(path string, regs reg.Registers, write func(io.Writer, reg.Registers) error) {
	switch path {
	case "":
	case "-":
		if err := write(os.Stdout, regs); err != nil {
			log.Fatal(err)
		}
	default:
		ouf, err := os.Create(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer ouf.Close()
		if err := write(ouf, regs); err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}
}
