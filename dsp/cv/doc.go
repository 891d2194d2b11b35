// Package cv provides control-value smoothers for de-zippering parameter
// changes before they reach the audio path.
package cv
