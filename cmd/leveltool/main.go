// Command leveltool is the level-pack maintainer's sanity-check CLI: it
// decodes a binary map file's header and prints a summary, optionally
// fully decoding it against a manifest-described tileset, and can verify
// that the RLE auxiliary-bit blob a map carries round-trips cleanly. It
// is the Go-native analogue of the original engine's in-game debug
// overlay, and supersedes the teacher's one-shot dev tools
// (cmd/gentiles, cmd/gensheet, cmd/verify_objects) which generated or
// inspected assets for a data model this port no longer uses.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shadowledge/ledgerun/internal/levelformat"
	"github.com/shadowledge/ledgerun/internal/resources"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "header":
		headerCmd(os.Args[2:])
	case "decode":
		decodeCmd(os.Args[2:])
	case "rle-check":
		rleCheckCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: leveltool <header|decode|rle-check> <path> [flags]")
}

// headerCmd decodes just the fixed-size header (spec §4.1 step 1), which
// needs no tileset, and prints its fields.
func headerCmd(args []string) {
	fs := flag.NewFlagSet("header", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	h, err := levelformat.PeekHeader(data)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("tileset:        %s\n", h.TilesetName)
	fmt.Printf("backdrop:       %s\n", h.BackdropName)
	fmt.Printf("music:          %s\n", h.MusicName)
	fmt.Printf("flags:          0x%02x\n", h.Flags)
	fmt.Printf("altBackdropNum: %d\n", h.AlternativeBackdropNumber)
	fmt.Printf("actorWords:     %d (%d actors)\n", h.ActorWordCount, h.ActorWordCount/3)
}

// decodeCmd fully decodes a level against a resource manifest's tileset,
// matching what internal/resources.Loader.LoadLevel does at runtime, and
// prints the resulting map/actor summary.
func decodeCmd(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	assetsDir := fs.String("assets", "assets", "assets directory containing manifest.yaml")
	difficulty := fs.Int("difficulty", int(levelformat.DifficultyMedium), "0=easy 1=medium 2=hard")
	fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	fsys := os.DirFS(*assetsDir)
	loader, err := resources.Load(fsys)
	if err != nil {
		fatal(err)
	}

	levelName := fs.Arg(0)
	level, err := loader.LoadLevel(levelName, levelformat.Difficulty(*difficulty))
	if err != nil {
		fatal(err)
	}

	fmt.Printf("map:        %dx%d\n", level.Map.Width(), level.Map.Height())
	fmt.Printf("backdrop:   %s\n", level.BackdropName)
	fmt.Printf("actors:     %d\n", len(level.Actors))
	fmt.Printf("player at:  (%d,%d) facingLeft=%v\n", level.PlayerSpawnX, level.PlayerSpawnY, level.PlayerFacingLeft)

	dynamicSections := 0
	for _, a := range level.Actors {
		if a.HasSection {
			dynamicSections++
		}
	}
	fmt.Printf("dynamic geometry sections: %d\n", dynamicSections)
}

// rleCheckCmd verifies spec §8's round-trip property for an arbitrary
// file treated as raw bytes: CompressRLE then DecompressRLE must
// reproduce the input exactly.
func rleCheckCmd(args []string) {
	fs := flag.NewFlagSet("rle-check", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal(err)
	}

	compressed := levelformat.CompressRLE(data)
	roundTripped, err := levelformat.DecompressRLE(compressed, len(data))
	if err != nil {
		fatal(err)
	}

	if len(roundTripped) != len(data) {
		fmt.Printf("FAIL: length mismatch, got %d want %d\n", len(roundTripped), len(data))
		os.Exit(1)
	}
	for i := range data {
		if data[i] != roundTripped[i] {
			fmt.Printf("FAIL: byte mismatch at offset %d\n", i)
			os.Exit(1)
		}
	}
	fmt.Printf("OK: %d bytes -> %d compressed -> round-trips exactly\n", len(data), len(compressed))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "leveltool:", err)
	os.Exit(1)
}
