/*
Package resources locates the font resources of the application.

As resource loading may be a time-consuming task (scanning system font
folders, possibly downloading a fallback font), some functions in this
package work in an async/await fashion by returning a promise.
Functions named

	Resolve…(…)

will return a resource-specific promise type, which the client will call
later to receive the loaded resource. The call to the promise-function will
then block until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphart.resources'.
func tracer() tracing.Trace {
	return tracing.Select("glyphart.resources")
}
