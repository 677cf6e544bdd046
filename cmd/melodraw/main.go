package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"gioui.org/app"

	"melodraw/cmd"
	"melodraw/oto"
	"melodraw/sketch"
	"melodraw/sketch/gioui"
	"melodraw/version"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var defaultMidiOutput = flag.String("midi-output", "", "echo notes to MIDI output with matching device name prefix")
var versionFlag = flag.Bool("v", false, "Print version.")

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	audioContext, err := oto.NewContext()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	broker := sketch.NewBroker()
	noteSender := cmd.NewNoteSender(broker, *defaultMidiOutput)
	model := sketch.NewModel(broker)
	player := sketch.NewCuePlayer(broker, audioContext, noteSender)
	go player.Run()

	sketcher := gioui.NewSketcher(model)
	go func() {
		sketcher.Main()
		sketch.TrySend(broker.ClosePlayer, struct{}{})
		select {
		case <-broker.FinishedPlayer:
		case <-time.After(3 * time.Second):
			log.Printf("cue player did not close in time")
		}
		audioContext.Close()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}
