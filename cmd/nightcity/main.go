package main

import (
	"flag"
	"fmt"
	"os"

	"nightcity/internal/city"
)

func main() {
	opts := city.DefaultOptions()

	speed := flag.Float64("speed", opts.Speed, "animation speed multiplier")
	density := flag.Float64("density", opts.Density, "star density, 0..1")
	meteors := flag.Float64("meteors", opts.MeteorFreq, "meteor frequency multiplier")
	stars := flag.String("stars", "field", "star mode: field, sphere or static")
	seed := flag.Uint64("seed", 0, "generation seed (0 = clock)")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	audio := flag.Bool("audio", false, "enable the ambient soundscape")
	flag.Parse()

	opts.Speed = *speed
	opts.Density = *density
	opts.MeteorFreq = *meteors
	opts.Seed = *seed
	opts.Windowed = *windowed
	opts.Audio = *audio

	switch *stars {
	case "field":
		opts.Stars = city.StarModeField
	case "sphere":
		opts.Stars = city.StarModeSphere
	case "static":
		opts.Stars = city.StarModeStatic
	default:
		fmt.Fprintf(os.Stderr, "unknown star mode %q\n", *stars)
		os.Exit(2)
	}

	if err := city.RunDesktop(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
