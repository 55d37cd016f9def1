/*
Package facescan is a sliding-window face detection library. It enumerates
all the valid window placements of an image at a fixed patch size, stride
and scale factor, and classifies each extracted patch through an injected
classifier, like the included pigo cascade.

The package provides a command line interface, supporting various flags for
the different scan parameters. To check the supported commands type:

	$ facescan --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/qsilt/facescan"
	)

	func main() {
		p := &facescan.Processor{
			// Initialize struct variables
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error scanning the image: %s", err.Error())
		}
	}
*/
package facescan
