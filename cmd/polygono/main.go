// Command polygono checks and draws 2d scenes.
//
// Input is a scene file in one of three formats, picked by extension: .svg,
// .toml, or anything else for the plain text format (newline separated "x y"
// points, with a blank line between polygons and "@ x y" for query points).
// Without a file, text is read from stdin.
//
//	polygono check shapes.toml
//	polygono draw shapes.svg -o shapes.png --preview
package main

import (
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polygono/internal/render"
	"github.com/osuushi/polygono/internal/shapeio"
)

var (
	app     = kingpin.New("polygono", "Check and draw 2d shapes.")
	verbose = app.Flag("verbose", "Log debug output.").Short('v').Envar("POLYGONO_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("POLYGONO_NO_COLOR").Bool()
	dump    = app.Flag("dump", "Pretty print the scene after reading it.").Envar("POLYGONO_DUMP").Bool()

	checkCmd  = app.Command("check", "Report self intersections, intersections and point containment.")
	checkFile = checkCmd.Arg("file", "Scene file. Reads text from stdin when omitted.").String()

	drawCmd     = app.Command("draw", "Render the scene to a PNG.")
	drawFile    = drawCmd.Arg("file", "Scene file. Reads text from stdin when omitted.").String()
	drawOut     = drawCmd.Flag("out", "Output PNG path.").Short('o').Default("polygono.png").Envar("POLYGONO_OUT").String()
	drawScale   = drawCmd.Flag("scale", "Pixels per scene unit.").Default("4").Envar("POLYGONO_SCALE").Float64()
	drawPreview = drawCmd.Flag("preview", "Print the image to the terminal (iTerm only).").Envar("POLYGONO_PREVIEW").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch command {
	case checkCmd.FullCommand():
		scene := readScene(log, *checkFile)
		au := aurora.NewAurora(!*noColor)
		if err := Check(os.Stdout, au, scene); err != nil {
			log.WithError(err).Fatal("could not write report")
		}

	case drawCmd.FullCommand():
		if *drawScale <= 0 {
			log.WithField("scale", *drawScale).Fatal("scale must be positive")
		}
		scene := readScene(log, *drawFile)
		if err := render.SavePNG(scene, *drawScale, *drawOut); err != nil {
			log.WithError(err).Fatal("could not draw scene")
		}
		log.WithFields(logrus.Fields{
			"out":   *drawOut,
			"scale": *drawScale,
		}).Info("drew scene")
		if *drawPreview {
			if err := render.Preview(*drawOut); err != nil {
				log.WithError(err).Error("could not preview scene")
			}
		}
	}
}

func readScene(log *logrus.Logger, path string) *shapeio.Scene {
	scene, err := shapeio.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Fatal("could not read scene")
	}
	log.WithFields(logrus.Fields{
		"file":     path,
		"polygons": len(scene.Polygons),
		"rects":    len(scene.Rects),
		"circles":  len(scene.Circles),
		"segments": len(scene.Segments),
		"points":   len(scene.Points),
	}).Debug("read scene")
	if scene.Empty() {
		log.WithField("file", path).Warn("scene is empty")
	}
	if *dump {
		pretty.Fprintf(os.Stderr, "%# v\n", scene)
	}
	return scene
}
