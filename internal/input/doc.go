// Package input defines the normalized input events the mode controller
// consumes.
//
// The terminal backend reports raw events; the application converts each
// into an Event holding either a key event, a pointer event or a resize.
// A tick that read nothing carries an Event of kind EventNone.
package input
