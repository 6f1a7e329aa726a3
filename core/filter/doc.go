/*
Package filter pipes content through external commands.

This is a small synchronous subprocess utility: content is written to a
uniquely named temporary file, a command is run with the file's path as
its final argument, and the command's standard output is captured and
returned. The temporary file is removed in all cases, success and
failure alike.

A typical use is transforming graph-description code blocks with an
external rendering tool before embedding the result in a document.
The utility itself is format-agnostic.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package filter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markout.filter'.
func tracer() tracing.Trace {
	return tracing.Select("markout.filter")
}
