package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adammck/angle"
	"github.com/sirupsen/logrus"
)

var (
	deg   = flag.Float64("deg", 0, "angle to convert, in degrees")
	rad   = flag.Float64("rad", 0, "angle to convert, in radians")
	debug = flag.Bool("debug", false, "log conversion details")
)

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	switch {
	case set["deg"] && set["rad"]:
		logrus.Fatal("pass either -deg or -rad, not both")

	case set["deg"]:
		d := angle.MakeDeg(*deg)
		logrus.WithFields(logrus.Fields{
			"deg": d.Value(),
			"rad": d.Rad().Value(),
		}).Debug("converted")
		fmt.Printf("%s deg = %s rad\n", d, d.Rad())

	case set["rad"]:
		r := angle.MakeRad(*rad)
		logrus.WithFields(logrus.Fields{
			"deg": r.Deg().Value(),
			"rad": r.Value(),
		}).Debug("converted")
		fmt.Printf("%s rad = %s deg\n", r, r.Deg())

	default:
		flag.Usage()
		os.Exit(1)
	}
}
