// DiffData
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/jmsojo/diffusivity-go/diffusivity"
)

func main() {
	parser := argparse.NewParser("DiffData", "Evaluates empirical diffusivity correlations for hydrogen isotopes in metal alloys and for binary gas pairs")

	medium := parser.Selector("m", "medium", []string{"metal", "gas"}, &argparse.Options{
		Default: "metal",
		Help:    "Correlation family: isotope in a metal alloy (Arrhenius) or binary gas pair (Fuller-Schettler-Giddings)"})

	alloy := parser.String("a", "alloy", &argparse.Options{
		Default: "SS316",
		Help:    "Metal alloy (metal medium)"})

	isotope := parser.String("i", "isotope", &argparse.Options{
		Default: "H",
		Help:    "Diffusing isotope (metal medium)"})

	gasA := parser.String("", "gas-a", &argparse.Options{
		Default: "H2",
		Help:    "Diffusing gas species (gas medium)"})

	gasB := parser.String("", "gas-b", &argparse.Options{
		Default: "Air",
		Help:    "Background gas species (gas medium)"})

	tempK := parser.Float("T", "temperature", &argparse.Options{
		Default: 700.0,
		Help:    "Temperature [K]"})

	pressPa := parser.Float("P", "pressure", &argparse.Options{
		Default: 101325.0,
		Help:    "Pressure [Pa] (gas medium)"})

	tMin := parser.Float("", "t-min", &argparse.Options{
		Default: 300.0,
		Help:    "Sweep start temperature [K]"})

	tMax := parser.Float("", "t-max", &argparse.Options{
		Default: 1000.0,
		Help:    "Sweep end temperature [K]"})

	steps := parser.Int("", "steps", &argparse.Options{
		Default: 1,
		Help:    "Number of sweep points between t-min and t-max (>1 enables sweep mode)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	noWarn := parser.Flag("", "no-warn", &argparse.Options{
		Help: "Suppress the advisory for temperatures outside the correlation range"})

	list := parser.Flag("", "list", &argparse.Options{
		Help: "Print the supported alloys and gases and exit"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "WARN",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// Log level selection
	logger := logging.GetLogger("diffusivity")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	if *list {
		fmt.Println("Alloys:", strings.Join(diffusivity.Alloys(), ", "))
		fmt.Println("Gases:", strings.Join(diffusivity.Gases(), ", "))
		return
	}

	var res *diffusivity.Sweep
	if *steps > 1 {
		// Sweep over [t-min, t-max]
		if *medium == "metal" {
			res, err = diffusivity.AlloySweep(*alloy, *isotope, *tMin, *tMax, *steps, !*noWarn)
		} else {
			res, err = diffusivity.GasSweep(*gasA, *gasB, *tMin, *tMax, *steps, *pressPa)
		}
	} else {
		// Single point
		var d float64
		if *medium == "metal" {
			d, err = diffusivity.AlloyDiffusivity(*alloy, *isotope, *tempK, !*noWarn)
		} else {
			d, err = diffusivity.GasPairDiffusivity(*gasA, *gasB, *tempK, *pressPa)
		}
		res = &diffusivity.Sweep{TemperatureK: []float64{*tempK}, D: []float64{d}}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	res.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV saved: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
