package color

import (
	"io"

	"github.com/fatih/color"
)

type Color interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Black = &colorStruct{
	name:          "black",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Trump = &colorStruct{
	name:          "trump",
	colorFunction: color.New(color.FgHiYellow, color.Bold).SprintfFunc(),
}

var Stdout io.Writer = color.Output
