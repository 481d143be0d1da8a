// Package export renders the parsed key/value mapping of an env file
// for consumption outside the tool.
//
// Both renderers are pure functions over the ordered pairs returned by
// envfile.Document.Pairs; neither mutates the document. Keys appear in
// document order in every format.
package export
