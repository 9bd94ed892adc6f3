// Package main provides a small diagnostic utility that opens a SEG-Y
// file, prints its text/binary header summary, and reports the inferred
// inline x crossline x offset geometry. It is illustrative plumbing over
// the core API, not a full-featured inspector.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/scigolib/segy"
	"github.com/scigolib/segy/internal/core"
)

func main() {
	ilByte := flag.Int("inline-byte", core.DefaultInlineByte, "trace header byte offset of the inline field")
	xlByte := flag.Int("crossline-byte", core.DefaultCrosslineByte, "trace header byte offset of the crossline field")
	offByte := flag.Int("offset-byte", core.DefaultOffsetByte, "trace header byte offset of the offset field")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: segyinfo [flags] <file.sgy>")
		flag.PrintDefaults()
		return
	}

	f, err := segy.Open(args[0], segy.ModeRead)
	if err != nil {
		log.Fatalf("open failed: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("close failed: %v", err)
		}
	}()

	text, err := f.ReadTextHeader()
	if err != nil {
		log.Fatalf("read text header failed: %v", err)
	}
	fmt.Println("Text header (first 80 bytes):")
	fmt.Println(string(text[:80]))

	count, err := f.TraceCount()
	if err != nil {
		log.Fatalf("trace count failed: %v", err)
	}
	interval, err := f.SampleInterval()
	if err != nil {
		log.Fatalf("sample interval failed: %v", err)
	}

	fmt.Printf("\nTraces: %d\nSamples/trace: %d\nFormat code: %d\nSample interval: %g ms\n",
		count, f.SampleCount(), f.FormatCode(), interval)

	geo, err := f.DetectGeometry(*ilByte, *xlByte, *offByte)
	if err != nil {
		log.Fatalf("geometry detection failed: %v", err)
	}

	fmt.Printf("\nSorting: %v\nInline count: %d\nCrossline count: %d\nOffset count: %d\n",
		geo.Sorting, geo.InlineCount, geo.CrosslineCount, geo.OffsetCount)
	fmt.Printf("Inline indices: %v\nCrossline indices: %v\nOffset indices: %v\n",
		geo.InlineIndices, geo.CrosslineIndices, geo.OffsetIndices)
}
