// Package logging provides the logging interface shared by the device, the
// HTTP host and the application layer. It abstracts the underlying
// implementation so components log consistently while the backend (zerolog
// or the standard library logger) is chosen at wiring time.
package logging
