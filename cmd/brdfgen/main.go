// brdfgen generates a sampled BRDF snapshot by evaluating an analytic
// reflectance model over an angle grid described by an hjson config.
//
// Usage:
//
//	brdfgen [-p] -c <config.hjson> -o <out.bsnp>
//
// Example config:
//
//	{
//	  model: ward              # ward | lambert
//	  roughness-x: 0.3
//	  roughness-y: 0.1
//	  coords: half-difference  # spherical | specular | half-difference
//	  num-angles: [9, 1, 9, 37]
//	  color-model: monochromatic
//	}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hjson/hjson-go"
	"github.com/pkg/profile"

	"github.com/mrjoshuak/go-brdf/brdf"
	"github.com/mrjoshuak/go-brdf/brdfutil"
	"github.com/mrjoshuak/go-brdf/reflectance"
	"github.com/mrjoshuak/go-brdf/snapshot"
)

// Config describes the model and grid to generate.
type Config struct {
	Model       string    `json:"model"`
	Albedo      float64   `json:"albedo"`
	RoughnessX  float64   `json:"roughness-x"`
	RoughnessY  float64   `json:"roughness-y"`
	Coords      string    `json:"coords"`
	NumAngles   [4]int    `json:"num-angles"`
	ColorModel  string    `json:"color-model"`
	Wavelengths []float64 `json:"wavelengths"`
}

// loadConfig parses an hjson config by round-tripping through json.
func loadConfig(path string) (conf Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(data, &mdat); err != nil {
		return
	}
	if data, err = json.Marshal(mdat); err != nil {
		return
	}
	err = json.Unmarshal(data, &conf)
	return
}

func (c Config) model() (reflectance.Model, error) {
	switch c.Model {
	case "lambert":
		return reflectance.Lambert{Albedo: c.Albedo}, nil
	case "ward":
		if c.RoughnessX <= 0 || c.RoughnessY <= 0 {
			return nil, fmt.Errorf("ward roughness must be positive, got %g, %g", c.RoughnessX, c.RoughnessY)
		}
		return reflectance.WardAnisotropic{RoughnessX: c.RoughnessX, RoughnessY: c.RoughnessY}, nil
	default:
		return nil, fmt.Errorf("unknown model %q", c.Model)
	}
}

func (c Config) coords() (brdf.CoordinateSystem, error) {
	switch c.Coords {
	case "spherical":
		return brdf.SphericalCoordinateSystem{}, nil
	case "specular":
		return brdf.SpecularCoordinateSystem{}, nil
	case "half-difference":
		return brdf.HalfDifferenceCoordinateSystem{}, nil
	default:
		return nil, fmt.Errorf("unknown coordinate system %q", c.Coords)
	}
}

func (c Config) colorModel() (brdf.ColorModel, error) {
	switch c.ColorModel {
	case "", "monochromatic":
		return brdf.Monochromatic, nil
	case "rgb":
		return brdf.RGB, nil
	case "spectral":
		return brdf.Spectral, nil
	default:
		return 0, fmt.Errorf("unknown color model %q", c.ColorModel)
	}
}

func main() {
	configPath := flag.String("c", "", "hjson config path")
	outPath := flag.String("o", "", "output snapshot path")
	prof := flag.Bool("p", false, "enable CPU profiling")
	flag.Parse()

	if *configPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *prof {
		st := profile.Start()
		defer st.Stop()
	}

	if err := run(*configPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "brdfgen:", err)
		os.Exit(1)
	}
}

func run(configPath, outPath string) error {
	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	m, err := conf.model()
	if err != nil {
		return err
	}
	coords, err := conf.coords()
	if err != nil {
		return err
	}
	cm, err := conf.colorModel()
	if err != nil {
		return err
	}

	b, err := brdf.NewBrdf(coords,
		conf.NumAngles[0], conf.NumAngles[1], conf.NumAngles[2], conf.NumAngles[3],
		cm, len(conf.Wavelengths))
	if err != nil {
		return err
	}
	ss := b.SampleSet()
	if cm == brdf.Spectral {
		for i, wl := range conf.Wavelengths {
			ss.SetWavelength(i, wl)
		}
	}

	brdfutil.FillEqualIntervalAngles(b)
	if err := brdfutil.Generate(b, m); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := snapshot.WriteBrdf(f, b); err != nil {
		return err
	}

	fmt.Printf("%s: wrote %s (%s)\n", m.Name(), outPath, brdfutil.Summarize(b))
	return nil
}
