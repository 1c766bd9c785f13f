//go:build js
// +build js

// Command web exposes the room generator to a browser page as the global
// DungeonGenerator object. Build it with gopherjs.
package main

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
)

func console(method string, args ...interface{}) {
	js.Global.Get("console").Call(method, args...)
}

// mathRandom draws from the page's Math.random
var mathRandom = generation.UniformFunc(func() float64 {
	return js.Global.Get("Math").Call("random").Float()
})

func instructionObject(d generation.DrawInstruction) map[string]interface{} {
	return map[string]interface{}{
		"color":   int(d.Color),
		"originX": d.OriginX,
		"originY": d.OriginY,
		"h":       d.H,
		"w":       d.W,
	}
}

// guard turns a panic into a console error; the page sees the end marker instead
func guard(op string, result *map[string]interface{}) {
	if r := recover(); r != nil {
		console("error", fmt.Sprintf("%s failed: %v", op, r))
		*result = instructionObject(generation.EndOfRooms)
	}
}

func newGenerator(opts config.Generation) map[string]interface{} {
	logMessage := func(msg string) { console("log", msg) }

	gen, err := generation.NewGenerator(opts, mathRandom, logMessage)
	if err != nil {
		console("error", err.Error())
		return nil
	}

	return map[string]interface{}{
		"initialize": func() (result map[string]interface{}) {
			defer guard("initialize", &result)
			bg, err := gen.Initialize()
			if err != nil {
				console("error", err.Error())
				return instructionObject(generation.EndOfRooms)
			}
			return instructionObject(bg)
		},
		"nextDraw": func() (result map[string]interface{}) {
			defer guard("nextDraw", &result)
			return instructionObject(gen.NextDraw())
		},
		"remaining": func() int {
			return gen.Remaining()
		},
	}
}

func main() {
	js.Global.Set("DungeonGenerator", map[string]interface{}{
		"new": func() map[string]interface{} {
			return newGenerator(config.DefaultGeneration())
		},
		// withOptions takes a plain object using the JSON config field names
		"withOptions": func(o *js.Object) map[string]interface{} {
			opts := config.DefaultGeneration()
			if o == nil || o == js.Undefined {
				return newGenerator(opts)
			}
			set := func(key string, dst *int) {
				if v := o.Get(key); v != js.Undefined && v != nil {
					*dst = v.Int()
				}
			}
			set("worldWidth", &opts.WorldWidth)
			set("worldHeight", &opts.WorldHeight)
			set("minRoomDim", &opts.MinRoomDim)
			set("maxRoomDim", &opts.MaxRoomDim)
			set("targetRoomCount", &opts.TargetRoomCount)
			if v := o.Get("maxAspectRatio"); v != js.Undefined && v != nil {
				opts.MaxAspectRatio = v.Float()
			}
			return newGenerator(opts)
		},
	})
}
